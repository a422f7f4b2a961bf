package encoders

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	assert.NotNil(t, Logger())
}

func TestOutOfRangeIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	e := newScalar(t, 3, 1, 5, FixedSize(4), false)
	require.Equal(t, 1, logs.FilterMessage("scalar encoder configured").Len())

	e.Encode(3)
	assert.Equal(t, 0, logs.FilterMessage("input outside encoder range").Len())

	e.Encode(9)
	entries := logs.FilterMessage("input outside encoder range").All()
	require.Len(t, entries, 1)
	assert.Equal(t, 9.0, entries[0].ContextMap()["input"])
}

func TestSetLoggerWhileEncoding(t *testing.T) {
	defer SetLogger(nil)
	e := newScalar(t, 3, 1, 5, FixedSize(4), false)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			e.Encode(9)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			core, _ := observer.New(zapcore.DebugLevel)
			SetLogger(zap.New(core))
		}
	}()
	wg.Wait()

	SetLogger(nil)
	assert.Same(t, nopLogger, Logger())
}

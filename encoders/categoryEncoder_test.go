package encoders

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/htm-community/sdrenc/sdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryUnknownValue(t *testing.T) {
	enc, err := NewCategoryEncoder(3, []string{"foo", "bar", "baz"})
	require.NoError(t, err)

	s, err := enc.Encode("qux")
	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "qux", lookupErr.Value)
}

func TestCategoryBlocksWidth3(t *testing.T) {
	enc, err := NewCategoryEncoder(3, []string{"foo", "bar", "baz"})
	require.NoError(t, err)

	expected := map[string]string{
		"foo": "111000000",
		"bar": "000111000",
		"baz": "000000111",
	}
	for value, bits := range expected {
		s, err := enc.Encode(value)
		require.NoError(t, err)
		assert.Equal(t, bits, s.String(), value)
	}
}

func TestCategoryBlocksWidth1(t *testing.T) {
	enc, err := NewCategoryEncoder(1, []string{"foo", "bar", "baz"})
	require.NoError(t, err)

	for value, bits := range map[string]string{"foo": "100", "bar": "010", "baz": "001"} {
		s, err := enc.Encode(value)
		require.NoError(t, err)
		assert.Equal(t, bits, s.String(), value)
	}
}

func TestCategoryBooleanValues(t *testing.T) {
	enc, err := NewCategoryEncoder(1, []bool{true, false})
	require.NoError(t, err)

	s, err := enc.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, "10", s.String())

	s, err = enc.Encode(false)
	require.NoError(t, err)
	assert.Equal(t, "01", s.String())
}

func TestCategoryMixedValues(t *testing.T) {
	enc, err := NewCategoryEncoder[any](1, []any{3, true})
	require.NoError(t, err)

	s, err := enc.Encode(3)
	require.NoError(t, err)
	assert.Equal(t, "10", s.String())

	s, err = enc.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, "01", s.String())

	// matched by string form
	s, err = enc.Encode("3")
	require.NoError(t, err)
	assert.Equal(t, "10", s.String())

	_, err = enc.Encode(4)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

type color int

func (c color) String() string {
	return [...]string{"red", "green", "blue"}[c]
}

func TestCategoryStringer(t *testing.T) {
	enc, err := NewCategoryEncoder(3, []color{0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"red", "green", "blue"}, enc.Categories())

	s, err := enc.Encode(color(1))
	require.NoError(t, err)
	assert.Equal(t, "000111000", s.String())
}

func TestCategoryDuplicates(t *testing.T) {
	_, err := NewCategoryEncoder(3, []string{"foo", "bar", "foo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "duplicate category")

	// different values with the same string form
	_, err = NewCategoryEncoder[any](3, []any{3, "3"})
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestCategoryInvalidConfiguration(t *testing.T) {
	_, err := NewCategoryEncoder(3, []string{})
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "categories", cfgErr.Field)

	_, err = NewCategoryEncoder(2, []string{"a", "b"})
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "width", cfgErr.Field)
	assert.Equal(t, "category", cfgErr.Encoder)
}

func TestCategorySingle(t *testing.T) {
	enc, err := NewCategoryEncoder(5, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, 5, enc.N())

	s, err := enc.Encode("only")
	require.NoError(t, err)
	assert.Equal(t, "11111", s.String())
}

func TestCategoryBlocksPartitionOutput(t *testing.T) {
	for _, w := range []int{1, 3, 5, 7, 21} {
		for _, count := range []int{1, 2, 3, 10, 57} {
			t.Run(fmt.Sprintf("w=%d/count=%d", w, count), func(t *testing.T) {
				categories := make([]int, count)
				for i := range categories {
					categories[i] = i * 7
				}
				enc, err := NewCategoryEncoder(w, categories)
				require.NoError(t, err)
				require.Equal(t, w*count, enc.N())

				union := sdr.Zeros(enc.N())
				for i, c := range categories {
					s, err := enc.Encode(c)
					require.NoError(t, err)
					require.Equal(t, w, s.OnBits())

					// block i covers [i*w, (i+1)*w)
					on := s.OnIndices()
					assert.Equal(t, i*w, on[0])
					assert.Equal(t, (i+1)*w-1, on[len(on)-1])

					assert.Equal(t, 0, union.And(s).OnBits(), "category %d overlaps", c)
					union = union.Or(s)
				}
				assert.Equal(t, strings.Repeat("1", w*count), union.String())
			})
		}
	}
}

func TestCategoryIndex(t *testing.T) {
	enc, err := NewCategoryEncoder(3, []string{"foo", "bar", "baz"})
	require.NoError(t, err)

	i, err := enc.Index("baz")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = enc.Index("")
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	assert.Equal(t, 3, enc.Width())
	assert.Equal(t, 9, enc.N())
	assert.Equal(t, "category", enc.Name())

	cats := enc.Categories()
	cats[0] = "changed"
	assert.Equal(t, []string{"foo", "bar", "baz"}, enc.Categories())
}

func TestBooleanEncoder(t *testing.T) {
	enc, err := NewBooleanEncoder(3)
	require.NoError(t, err)

	assert.Equal(t, "111000", enc.Encode(true).String())
	assert.Equal(t, "000111", enc.Encode(false).String())
	assert.Equal(t, 6, enc.N())
	assert.Equal(t, 3, enc.Width())
	assert.Equal(t, []string{"true", "false"}, enc.Categories())

	_, err = NewBooleanEncoder(4)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestCategoryEncodeIsPure(t *testing.T) {
	enc, err := NewCategoryEncoder(3, []string{"foo", "bar", "baz"})
	require.NoError(t, err)

	first, err := enc.Encode("bar")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		s, err := enc.Encode("bar")
		require.NoError(t, err)
		assert.True(t, first.Equals(s))
	}
}

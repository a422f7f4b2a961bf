package encoders

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the sentinel wrapped by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid encoder configuration")

	// ErrUnknownCategory is the sentinel wrapped by every *LookupError.
	ErrUnknownCategory = errors.New("value is not a defined category")
)

// ConfigurationError is returned by encoder constructors when the supplied
// params cannot produce a valid encoder. It matches ErrConfiguration with
// errors.Is.
type ConfigurationError struct {
	Encoder string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s encoder: %s: %s", e.Encoder, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// LookupError is returned when a category encoder is asked to encode a
// value that is not one of its categories. It matches ErrUnknownCategory
// with errors.Is.
type LookupError struct {
	Value string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%q: %v", e.Value, ErrUnknownCategory)
}

func (e *LookupError) Unwrap() error { return ErrUnknownCategory }

func configErr(encoder, field, format string, args ...any) error {
	return &ConfigurationError{
		Encoder: encoder,
		Field:   field,
		Reason:  fmt.Sprintf(format, args...),
	}
}

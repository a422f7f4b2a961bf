package encoders

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/htm-community/sdrenc/sdr"
	"go.uber.org/zap"
)

/*
 A category encoder gives every category its own block of w bits. The
output is n = w * len(categories) bits long and the blocks of different
categories never overlap.

Categories are identified by their string form (fmt.Sprint), so a value
only has to print the same way as a category to match it. Two categories
with the same string form are rejected at construction.
*/
type CategoryEncoder[T any] struct {
	scalar *ScalarEncoder
	//xxhash of category key -> ordinal. Keys are stored once, in keys,
	//and compared on lookup so a hash match alone never selects a category.
	index map[uint64]int
	keys  []string
}

//Canonical form used to identify a category
func categoryKey(v any) string {
	return fmt.Sprint(v)
}

func NewCategoryEncoder[T any](width int, categories []T) (*CategoryEncoder[T], error) {
	if len(categories) == 0 {
		return nil, configErr("category", "categories", "at least one category is required")
	}

	p := NewScalarEncoderParams(width, 0, float64(len(categories)-1))
	p.Size = Radius(1)
	p.Name = "category"
	scalar, err := NewScalarEncoder(p)
	if err != nil {
		return nil, err
	}

	ce := &CategoryEncoder[T]{
		scalar: scalar,
		index:  make(map[uint64]int, len(categories)),
		keys:   make([]string, len(categories)),
	}

	for i, category := range categories {
		key := categoryKey(category)
		h := xxhash.Sum64String(key)
		if existing, ok := ce.index[h]; ok {
			if ce.keys[existing] == key {
				return nil, configErr("category", "categories",
					"duplicate category %q at positions %d and %d", key, existing, i)
			}
			return nil, configErr("category", "categories",
				"categories %q and %q have the same hash", ce.keys[existing], key)
		}
		ce.index[h] = i
		ce.keys[i] = key
	}

	Logger().Debug("category encoder configured",
		zap.Int("w", width),
		zap.Int("n", scalar.N()),
		zap.Strings("categories", ce.keys))

	return ce, nil
}

func (ce *CategoryEncoder[T]) Width() int {
	return ce.scalar.Width()
}

func (ce *CategoryEncoder[T]) N() int {
	return ce.scalar.N()
}

func (ce *CategoryEncoder[T]) Name() string {
	return ce.scalar.Name()
}

// Categories returns the string form of every category in ordinal order.
func (ce *CategoryEncoder[T]) Categories() []string {
	result := make([]string, len(ce.keys))
	copy(result, ce.keys)
	return result
}

// Index returns the ordinal of value among the categories.
func (ce *CategoryEncoder[T]) Index(value T) (int, error) {
	key := categoryKey(value)
	i, ok := ce.index[xxhash.Sum64String(key)]
	if !ok || ce.keys[i] != key {
		return 0, &LookupError{Value: key}
	}
	return i, nil
}

func (ce *CategoryEncoder[T]) Encode(value T) (*sdr.SDR, error) {
	i, err := ce.Index(value)
	if err != nil {
		return nil, err
	}
	return ce.scalar.Encode(float64(i)), nil
}

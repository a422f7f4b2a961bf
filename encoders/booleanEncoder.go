package encoders

import (
	"github.com/htm-community/sdrenc/sdr"
)

// BooleanEncoder is a category encoder over [true, false]: true occupies
// the first block of w bits, false the second.
type BooleanEncoder struct {
	*CategoryEncoder[bool]
}

func NewBooleanEncoder(width int) (*BooleanEncoder, error) {
	ce, err := NewCategoryEncoder(width, []bool{true, false})
	if err != nil {
		return nil, err
	}
	return &BooleanEncoder{ce}, nil
}

// Encode never fails, both booleans are categories.
func (be *BooleanEncoder) Encode(value bool) *sdr.SDR {
	i := 1
	if value {
		i = 0
	}
	return be.scalar.Encode(float64(i))
}

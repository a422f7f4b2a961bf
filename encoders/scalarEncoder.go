package encoders

import (
	"math"

	"github.com/htm-community/sdrenc/sdr"
	"github.com/htm-community/sdrenc/utils"
	"go.uber.org/zap"
)

/*
 Params for the scalar encoder

 Width -- The number of bits that are set to encode a single value, the
"width" of the output signal. Must be odd to avoid centering problems.

 Size -- Determines n, the number of bits in the output. Either a
FixedSize or one of the Resolution / Radius policies.

 Periodic -- If true the input value "wraps around" such that MinVal = MaxVal.

 ClipInput -- Non periodic encoders clamp inputs outside [MinVal, MaxVal]
to the nearest bound. Without it out of range inputs wrap around the end of
the output, the same way periodic encoders do.
*/
type ScalarEncoderParams struct {
	Width     int
	MinVal    float64
	MaxVal    float64
	Size      Size
	Periodic  bool
	ClipInput bool
	Name      string
}

func NewScalarEncoderParams(width int, minVal, maxVal float64) *ScalarEncoderParams {
	p := new(ScalarEncoderParams)
	p.Width = width
	p.MinVal = minVal
	p.MaxVal = maxVal
	p.Name = "scalar"
	return p
}

/*
 A scalar encoder encodes a numeric (floating point) value into an array
of bits. The output is 0's except for a contiguous block of 1's. The
location of this contiguous block varies continuously with the input value.

The input range is divided into buckets, one per unique starting position
of the block. A value maps to the bucket nearest to it (halves round away
from zero) and the block occupies the w positions from there on, wrapping
around the end of the output.

The encoding is linear. If you want a nonlinear encoding, just transform
the scalar (e.g. by applying a logarithm function) before encoding.
It is not recommended to bin the data as a pre-processing step, e.g.
"1" = $0 - $.20, "2" = $.21-$0.80, "3" = $.81-$1.20, etc. as this
removes a lot of information and prevents nearby values from overlapping
in the output. Instead, use a continuous transformation that scales
the data (a piecewise transformation is fine).

A ScalarEncoder is immutable and safe for concurrent use.
*/
type ScalarEncoder struct {
	width     int
	minVal    float64
	maxVal    float64
	periodic  bool
	clipInput bool
	name      string

	n int
	//number of distinct starting positions of the active block
	uniquePositions int
	bucketSize      float64
}

func NewScalarEncoder(p *ScalarEncoderParams) (*ScalarEncoder, error) {
	name := p.Name
	if name == "" {
		name = "scalar"
	}

	if p.Width < 1 || p.Width%2 == 0 {
		return nil, configErr(name, "width", "must be an odd positive number, got %d", p.Width)
	}
	if math.IsNaN(p.MinVal) || math.IsInf(p.MinVal, 0) ||
		math.IsNaN(p.MaxVal) || math.IsInf(p.MaxVal, 0) {
		return nil, configErr(name, "range", "bounds must be finite, got %v - %v", p.MinVal, p.MaxVal)
	}
	if p.MaxVal < p.MinVal {
		return nil, configErr(name, "range", "max %v is less than min %v", p.MaxVal, p.MinVal)
	}
	if math.IsInf(p.MaxVal-p.MinVal, 0) {
		return nil, configErr(name, "range", "range %v - %v is too wide", p.MinVal, p.MaxVal)
	}
	if p.Size == nil {
		return nil, configErr(name, "size", "no size or size policy given")
	}

	n, ok := resolveSize(p.Size, p.Width, p.MinVal, p.MaxVal, p.Periodic)
	if !ok || n < 1 {
		return nil, configErr(name, "size", "output length must be a positive number of bits, got %v",
			p.Size.resolve(p.Width, p.MinVal, p.MaxVal, p.Periodic))
	}
	if n < p.Width {
		return nil, configErr(name, "size", "output length %d is smaller than width %d", n, p.Width)
	}

	se := &ScalarEncoder{
		width:     p.Width,
		minVal:    p.MinVal,
		maxVal:    p.MaxVal,
		periodic:  p.Periodic,
		clipInput: p.ClipInput,
		name:      name,
		n:         n,
	}

	if se.periodic {
		se.uniquePositions = n
	} else {
		se.uniquePositions = n - se.width
	}
	if se.uniquePositions > 0 {
		se.bucketSize = (se.maxVal - se.minVal) / float64(se.uniquePositions)
	}

	Logger().Debug("scalar encoder configured",
		zap.String("name", se.name),
		zap.Int("w", se.width),
		zap.Int("n", se.n),
		zap.Float64("min", se.minVal),
		zap.Float64("max", se.maxVal),
		zap.Bool("periodic", se.periodic),
		zap.Bool("clip", se.clipInput))

	return se, nil
}

func (se *ScalarEncoder) Width() int {
	return se.width
}

// N returns the number of bits in the output.
func (se *ScalarEncoder) N() int {
	return se.n
}

func (se *ScalarEncoder) Name() string {
	return se.name
}

func (se *ScalarEncoder) Periodic() bool {
	return se.periodic
}

//Replaces non finite inputs and applies clipping
func (se *ScalarEncoder) prepareInput(input float64) float64 {
	switch {
	case math.IsNaN(input):
		return se.minVal
	case math.IsInf(input, 1):
		return se.maxVal
	case math.IsInf(input, -1):
		return se.minVal
	}

	if se.periodic || (input >= se.minVal && input <= se.maxVal) {
		return input
	}

	if ce := Logger().Check(zap.DebugLevel, "input outside encoder range"); ce != nil {
		ce.Write(
			zap.String("name", se.name),
			zap.Float64("input", input),
			zap.Float64("min", se.minVal),
			zap.Float64("max", se.maxVal),
			zap.Bool("clip", se.clipInput))
	}

	if se.clipInput {
		return math.Max(se.minVal, math.Min(input, se.maxVal))
	}
	return input
}

/*
 Returns the bucket for the given input, reduced into [0, n). This is
the position of the first active bit.
*/
func (se *ScalarEncoder) bucket(input float64) int {
	input = se.prepareInput(input)
	if se.bucketSize == 0 {
		// single bucket: n == w, or max == min
		return 0
	}

	q := (input - se.minVal) / se.bucketSize
	if math.IsInf(q, 0) || math.IsNaN(q) {
		q = se.farBucket(input)
	}
	b := math.Round(q)
	// reduce before converting so far out of range inputs can't overflow int
	b = math.Mod(b, float64(se.n))
	return utils.Mod(int(b), se.n)
}

/*
 Scaled offset for inputs too far from the range to divide by the bucket
size. Periodic encoders first reduce the input and min by whole periods.
Non periodic encoders take the bucket of the nearest bound.
*/
func (se *ScalarEncoder) farBucket(input float64) float64 {
	if se.periodic {
		period := se.maxVal - se.minVal
		offset := math.Mod(input, period) - math.Mod(se.minVal, period)
		return offset / se.bucketSize
	}
	if input < se.minVal {
		return 0
	}
	return float64(se.uniquePositions)
}

// ActiveBits returns the w positions the input activates, in block order.
// For a wrapped block the positions are not ascending.
func (se *ScalarEncoder) ActiveBits(input float64) []int {
	first := se.bucket(input)
	result := make([]int, se.width)
	for i := range result {
		result[i] = utils.Mod(first+i, se.n)
	}
	return result
}

func (se *ScalarEncoder) Encode(input float64) *sdr.SDR {
	return sdr.New(se.n, se.ActiveBits(input))
}

package encoders

import (
	"math"
)

/*
 Size determines n, the number of bits in an encoder's output. It is
either a FixedSize or a SizePolicy and is resolved once, when the encoder
is constructed.
*/
type Size interface {
	resolve(width int, minVal, maxVal float64, periodic bool) float64
}

// FixedSize is a literal output length.
type FixedSize int

func (n FixedSize) resolve(int, float64, float64, bool) float64 {
	return float64(n)
}

/*
 SizePolicy derives the output length from the encoder's width and input
range. Periodic encoders wrap around, so they need no trailing block of w
bits for the last bucket.
*/
type SizePolicy func(width int, minVal, maxVal float64, periodic bool) float64

func (p SizePolicy) resolve(width int, minVal, maxVal float64, periodic bool) float64 {
	return p(width, minVal, maxVal, periodic)
}

func padding(width int, periodic bool) float64 {
	if periodic {
		return 0
	}
	return float64(width)
}

/*
 Resolution sizes the output so the bit block shifts by one position
for every resolution step of the input range.

when w = 3 and resolution = 0.5 minValue = 1 maxValue = 4

 111000000    // 1
 011100000    // 1.5
 001110000    // 2
 000011100    // 3
 000000111    // 4

number of bits needed = 9
*/
func Resolution(resolution float64) SizePolicy {
	return func(width int, minVal, maxVal float64, periodic bool) float64 {
		return padding(width, periodic) + (maxVal-minVal)/resolution
	}
}

/*
 Radius sizes the output so that inputs one radius apart are w bits
apart, i.e. their representations do not overlap.

when w = 3 and radius = 1 minValue = 1, maxValue = 4

 111000000000    //1
 000111000000    //2
 000000111000    //3
 000000000111    //4

nr of bits needed = 12
*/
func Radius(radius float64) SizePolicy {
	return func(width int, minVal, maxVal float64, periodic bool) float64 {
		return padding(width, periodic) + float64(width)*(maxVal-minVal)/radius
	}
}

//Resolves size to a whole number of bits. Policies may return
//values such as 30.000000000000004, those round to the nearest integer.
func resolveSize(size Size, width int, minVal, maxVal float64, periodic bool) (int, bool) {
	n := size.resolve(width, minVal, maxVal, periodic)
	if math.IsNaN(n) || math.IsInf(n, 0) || n > math.MaxInt32 {
		return 0, false
	}
	return int(math.Round(n)), true
}

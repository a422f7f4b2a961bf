// Package sdr provides the fixed-length sparse binary vector produced by
// the encoders.
package sdr

import (
	"fmt"
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

/*
 SDR is a sparse distributed representation: a binary vector of fixed
length where only a few positions are active. Only the active positions
are stored.

An SDR is not modified after construction, so it can be shared between
goroutines without locking.
*/
type SDR struct {
	bits   *roaring.Bitmap
	length int
}

/* Initializers */

//Creates a vector of length n with the given positions active.
//Duplicate positions collapse. Panics if a position is outside [0, n).
func New(n int, active []int) *SDR {
	s := newEmpty(n)
	for _, idx := range active {
		s.checkIndex(idx)
		s.bits.Add(uint32(idx))
	}
	return s
}

//Vector of length n with no active bits
func Zeros(n int) *SDR {
	return newEmpty(n)
}

//Vector of length n with every bit active
func Ones(n int) *SDR {
	s := newEmpty(n)
	s.bits.AddRange(0, uint64(n))
	return s
}

//Creates a vector from ints, any non zero value is active
func FromInts(ints []int) *SDR {
	s := newEmpty(len(ints))
	for idx, val := range ints {
		if val != 0 {
			s.bits.Add(uint32(idx))
		}
	}
	return s
}

//Creates a vector from a dense string, any character other than '0' is active
func FromStr(str string) *SDR {
	s := newEmpty(len(str))
	for idx := 0; idx < len(str); idx++ {
		if str[idx] != '0' {
			s.bits.Add(uint32(idx))
		}
	}
	return s
}

/* helpers */

func newEmpty(n int) *SDR {
	if n < 0 {
		panic(fmt.Sprintf("sdr: negative length %d", n))
	}
	//positions are stored as uint32
	if int64(n) > math.MaxUint32 {
		panic(fmt.Sprintf("sdr: length %d exceeds %d", n, uint64(math.MaxUint32)))
	}
	return &SDR{bits: roaring.New(), length: n}
}

func (s *SDR) checkIndex(idx int) {
	if idx < 0 || idx >= s.length {
		panic(fmt.Sprintf("sdr: index %d out of range [0, %d)", idx, s.length))
	}
}

func (s *SDR) checkSameLen(other *SDR) {
	if s.length != other.length {
		panic(fmt.Sprintf("sdr: length mismatch %d != %d", s.length, other.length))
	}
}

/* exported functions */

//Total number of positions
func (s *SDR) Len() int {
	return s.length
}

//Number of active positions
func (s *SDR) OnBits() int {
	return int(s.bits.GetCardinality())
}

//Reports whether position idx is active
func (s *SDR) Get(idx int) bool {
	s.checkIndex(idx)
	return s.bits.Contains(uint32(idx))
}

//Active positions in ascending order
func (s *SDR) OnIndices() []int {
	result := make([]int, 0, s.bits.GetCardinality())
	it := s.bits.Iterator()
	for it.HasNext() {
		result = append(result, int(it.Next()))
	}
	return result
}

//Dense representation
func (s *SDR) Slice() []bool {
	result := make([]bool, s.length)
	it := s.bits.Iterator()
	for it.HasNext() {
		result[it.Next()] = true
	}
	return result
}

func (s *SDR) Equals(other *SDR) bool {
	if other == nil || s.length != other.length {
		return false
	}
	return s.bits.Equals(other.bits)
}

//Returns a new vector with other's positions placed after s
func (s *SDR) Append(other *SDR) *SDR {
	result := newEmpty(s.length + other.length)
	result.bits.Or(s.bits)
	it := other.bits.Iterator()
	for it.HasNext() {
		result.bits.Add(it.Next() + uint32(s.length))
	}
	return result
}

func (s *SDR) Or(other *SDR) *SDR {
	s.checkSameLen(other)
	return &SDR{bits: roaring.Or(s.bits, other.bits), length: s.length}
}

func (s *SDR) And(other *SDR) *SDR {
	s.checkSameLen(other)
	return &SDR{bits: roaring.And(s.bits, other.bits), length: s.length}
}

//Dense '0'/'1' rendering, one character per position
func (s *SDR) String() string {
	var sb strings.Builder
	sb.Grow(s.length)
	for _, on := range s.Slice() {
		if on {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

package encoders

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/cznic/mathutil"
	"github.com/gonum/floats"
	"github.com/htm-community/sdrenc/sdr"
	"github.com/htm-community/sdrenc/utils"
)

/*
 Given a coordinate in an N-dimensional space, and a radius around
that coordinate, the Coordinate Encoder returns an SDR representation
of that position.

The Coordinate Encoder uses an N-dimensional integer coordinate space.
For example, a valid coordinate in this space is (150, -49, 58), whereas
an invalid coordinate would be (55.4, -5, 85.8475).

It uses the following algorithm:

1. Find all the coordinates around the input coordinate, within the
specified radius.
2. For each coordinate, use a uniform hash function to
deterministically map it to a real number between 0 and 1. This is the
"order" of the coordinate.
3. Of these coordinates, pick the top W by order, where W is the
number of active bits desired in the SDR.
4. For each of these W coordinates, use a uniform hash function to
deterministically map it to one of the bits in the SDR. Make this bit active.
5. This results in a final SDR with exactly W bits active
(barring chance hash collisions).
*/
type CoordinateEncoder struct {
	//Number of active bits in SDR
	ActiveBits int
	//Number of bits in SDR
	Size int
}

var errInvalidCoordinate = errors.New("invalid coordinate encoder input")

func NewCoordinateEncoder(activeBits int, n int) (*CoordinateEncoder, error) {
	if activeBits <= 0 || activeBits%2 == 0 {
		return nil, configErr("coordinate", "activeBits", "must be an odd positive integer, got %d", activeBits)
	}

	if n <= 6*activeBits {
		return nil, configErr("coordinate", "n",
			"must be more than 6 times activeBits (ideally 11 times), got %d for %d active bits", n, activeBits)
	}

	return &CoordinateEncoder{ActiveBits: activeBits, Size: n}, nil
}

func (e *CoordinateEncoder) Width() int {
	return e.ActiveBits
}

func (e *CoordinateEncoder) N() int {
	return e.Size
}

func (e *CoordinateEncoder) Name() string {
	return fmt.Sprintf("[%v:%v]", e.Size, e.ActiveBits)
}

const (
	orderSeed uint8 = iota
	bitSeed
)

//hashes a coordinate, seed separates the order and bit hashes
func hashCoord(coord []int, seed uint8) uint64 {
	buf := make([]byte, 1+8*len(coord))
	buf[0] = seed
	for i, val := range coord {
		binary.LittleEndian.PutUint64(buf[1+8*i:], uint64(int64(val)))
	}
	return xxhash.Sum64(buf)
}

//returns a coords order in [0, 1)
func order(coord []int) float64 {
	return float64(hashCoord(coord, orderSeed)>>11) / (1 << 53)
}

//Map coordinate to active bit index
func (e *CoordinateEncoder) coordBit(coord []int) int {
	return int(hashCoord(coord, bitSeed) % uint64(e.Size))
}

//Largest number of neighbors Encode will enumerate
const maxNeighborhood = 1 << 20

//Number of coordinates within radius of a point in dims dimensions,
//ok is false when it exceeds maxNeighborhood
func neighborhoodSize(dims int, radius int) (uint64, bool) {
	side := 2*uint64(radius) + 1
	size := uint64(1)
	for i := 0; i < dims; i++ {
		hi, lo := mathutil.MulUint128_64(size, side)
		if hi != 0 || lo > maxNeighborhood {
			return 0, false
		}
		size = lo
	}
	return size, true
}

//Returns all coordinates within radius of coord
func neighbors(coord []int, radius int) [][]int {
	ranges := make([][]int, len(coord))
	for idx, val := range coord {
		ranges[idx] = utils.RangeInt(val-radius, val+radius)
	}
	return utils.CartProductInt(ranges)
}

//Returns the w neighbors with the highest order
func (e *CoordinateEncoder) winners(coord []int, radius int) [][]int {
	candidates := neighbors(coord, radius)

	orders := make([]float64, len(candidates))
	for i, neighbor := range candidates {
		orders[i] = order(neighbor)
	}
	//sort by order
	indices := make([]int, len(orders))
	floats.Argsort(orders, indices)

	count := min(e.ActiveBits, len(candidates))
	result := make([][]int, count)
	for i := 0; i < count; i++ {
		result[i] = candidates[indices[len(indices)-1-i]]
	}
	return result
}

//Encodes coord with the given radius. The neighborhood, (2*radius+1)^len(coord)
//coordinates, must not exceed maxNeighborhood.
func (e *CoordinateEncoder) Encode(coord []int, radius int) (*sdr.SDR, error) {
	if len(coord) == 0 {
		return nil, fmt.Errorf("%w: empty coordinate", errInvalidCoordinate)
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: negative radius %d", errInvalidCoordinate, radius)
	}
	if _, ok := neighborhoodSize(len(coord), radius); !ok {
		return nil, fmt.Errorf("%w: radius %d spans more than %d coordinates in %d dimensions",
			errInvalidCoordinate, radius, maxNeighborhood, len(coord))
	}

	//select top n winners and project bit positions on to result
	winners := e.winners(coord, radius)
	bits := make([]int, len(winners))
	for i, val := range winners {
		bits[i] = e.coordBit(val)
	}

	return sdr.New(e.Size, bits), nil
}

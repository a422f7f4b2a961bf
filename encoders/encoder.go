package encoders

/*
 A value encoder takes a value and encodes it with a partial sparse
representation of bits.
*/
type ValueEncoder interface {
	//Number of active bits per encoding
	Width() int
	//Number of bits in the output
	N() int
	Name() string
}

var (
	_ ValueEncoder = (*ScalarEncoder)(nil)
	_ ValueEncoder = (*CategoryEncoder[string])(nil)
	_ ValueEncoder = (*BooleanEncoder)(nil)
	_ ValueEncoder = (*DateEncoder)(nil)
	_ ValueEncoder = (*CoordinateEncoder)(nil)
)

//Output length of encoders whose outputs are concatenated
func TotalN(encoders ...ValueEncoder) int {
	result := 0
	for _, val := range encoders {
		result += val.N()
	}
	return result
}

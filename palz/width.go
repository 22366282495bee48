package palz

import "fmt"

// MaxCode is the largest code a 3-byte field can hold.
const MaxCode = 1<<24 - 1

// MaxWords is the largest number of distinct words a file may have.
const MaxWords = MaxCode - SeparatorCount

// maxField holds the largest value of a field, indexed by width.
var maxField = [4]uint32{0, 1<<8 - 1, 1<<16 - 1, 1<<24 - 1}

// ByteWidth returns the number of bytes needed to store n, which is the
// width of every code field in a file whose largest code is n.
func ByteWidth(n uint64) (int, error) {
	switch {
	case n <= 1<<8-1:
		return 1, nil
	case n <= 1<<16-1:
		return 2, nil
	case n <= MaxCode:
		return 3, nil
	}
	return 0, fmt.Errorf("%w: %d symbols need more than 3 bytes", ErrBigDictionary, n)
}

// putField stores v little-endian in the first w bytes of buf.
func putField(buf []byte, v uint32, w int) {
	for i := 0; i < w; i++ {
		buf[i] = byte(v >> (8 * i))
	}
}

// field decodes exactly len(buf) little-endian bytes.
func field(buf []byte) uint32 {
	var v uint32
	for i := len(buf) - 1; i >= 0; i-- {
		v = v<<8 | uint32(buf[i])
	}
	return v
}

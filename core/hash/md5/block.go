package md5

import (
	"encoding/binary"
	"math/bits"
)

// State is the running MD5 accumulator: the four chaining words a, b, c, d.
type State [4]uint32

// initial chaining values
var initState = State{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// Additive constants, floor(abs(sin(i+1)) * 2^32) for each step i.
var table = [64]uint32{
	// round 1
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	// round 2
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	// round 3
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	// round 4
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// Left rotation applied at each step.
var shifts = [64]uint8{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// Message word consumed at each step.
var schedule = [64]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	1, 6, 11, 0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12,
	5, 8, 11, 14, 1, 4, 7, 10, 13, 0, 3, 6, 9, 12, 15, 2,
	0, 7, 14, 5, 12, 3, 10, 1, 8, 15, 6, 13, 4, 11, 2, 9,
}

func f1(x, y, z uint32) uint32 { return z ^ (x & (y ^ z)) }
func f2(x, y, z uint32) uint32 { return f1(z, x, y) }
func f3(x, y, z uint32) uint32 { return x ^ y ^ z }
func f4(x, y, z uint32) uint32 { return y ^ (x | ^z) }

// Compress runs the MD5 compression function over a single 64 byte block and
// returns the updated state. The block is interpreted as sixteen little endian
// words regardless of the host byte order.
func Compress(s State, block *[BlockSize]byte) State {
	var in [16]uint32
	for i := range in {
		in[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d := s[0], s[1], s[2], s[3]
	for i := 0; i < 64; i++ {
		var f uint32
		switch i >> 4 {
		case 0:
			f = f1(b, c, d)
		case 1:
			f = f2(b, c, d)
		case 2:
			f = f3(b, c, d)
		default:
			f = f4(b, c, d)
		}
		a += f + in[schedule[i]] + table[i]
		a = bits.RotateLeft32(a, int(shifts[i])) + b
		// the next step writes into d, with a, b, c as its inputs
		a, b, c, d = d, a, b, c
	}

	return State{s[0] + a, s[1] + b, s[2] + c, s[3] + d}
}

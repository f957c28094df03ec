// Package bitvec provides densely-packed vectors over GF(2), i.e. bit
// vectors whose addition is XOR.
package bitvec

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/alan-christopher/simon/go/generated/simonpb"
)

const blockSize = 8

// A Dense is a bit vector where every bit is explicitly represented. Bit 0
// is the leftmost character of the string form.
type Dense struct {
	bits []byte
	len  int
}

// NewDense returns a new Dense whose data is a copy of data, and whose
// length is bitLen. If bitLen is longer than data, then trailing zeros are
// added. If bitLen is negative, then it is inferred from data.
func NewDense(data []byte, bitLen int) Dense {
	if bitLen < 0 {
		bitLen = len(data) * blockSize
	}
	b := make([]byte, BytesFor(bitLen))
	copy(b, data)
	d := Dense{bits: b, len: bitLen}
	d.clearTail()
	return d
}

// Empty returns an empty bit vector.
func Empty() Dense {
	return Dense{}
}

// FromString converts a string of '1's and '0's to a Dense. Spaces are
// ignored.
func FromString(s string) (Dense, error) {
	d := Dense{}
	for _, c := range s {
		switch c {
		case '1':
			d.AppendBit(true)
		case '0':
			d.AppendBit(false)
		case ' ':
			continue
		default:
			return Dense{}, fmt.Errorf("invalid bit vector rep: %q", s)
		}
	}
	return d, nil
}

// FromUint unpacks the low n bits of v into a Dense, mapping bit i of v to
// position i.
func FromUint(v uint, n int) Dense {
	d := Dense{bits: make([]byte, BytesFor(n)), len: n}
	for i := 0; i < n; i++ {
		if v&(1<<i) != 0 {
			d.bits[i/blockSize] |= 1 << (i % blockSize)
		}
	}
	return d
}

// FromProto converts a DenseBitVector protocol buffer to a Dense.
func FromProto(pb *simonpb.DenseBitVector) Dense {
	return NewDense(pb.GetBits(), int(pb.GetLen()))
}

// ToProto converts d into an equivalent DenseBitVector proto.
func (d Dense) ToProto() *simonpb.DenseBitVector {
	return &simonpb.DenseBitVector{
		Bits: d.Data(),
		Len:  int32(d.len),
	}
}

// Size returns the number of bits in d.
func (d Dense) Size() int {
	return d.len
}

// Data returns a copy of the bytes underlying d.
func (d Dense) Data() []byte {
	r := make([]byte, len(d.bits))
	copy(r, d.bits)
	return r
}

// Get returns the bit at idx. Bits beyond the end of d read as zero.
func (d Dense) Get(idx int) bool {
	if idx < 0 || idx >= d.len {
		return false
	}
	return d.bits[idx/blockSize]&(1<<(idx%blockSize)) != 0
}

// Uint packs d into an unsigned integer, mapping position i to bit i of the
// result. d must be at most the machine word size.
func (d Dense) Uint() uint {
	var v uint
	for i := 0; i < d.len; i++ {
		if d.Get(i) {
			v |= 1 << i
		}
	}
	return v
}

// AppendBit adds a single bit to the end of d.
func (d *Dense) AppendBit(bit bool) {
	i, pos := d.len/blockSize, d.len%blockSize
	d.len++
	if pos == 0 {
		d.bits = append(d.bits, 0)
	}
	if bit {
		d.bits[i] |= 1 << pos
	}
}

// Flip inverts the bit at idx.
func (d *Dense) Flip(idx int) {
	d.bits[idx/blockSize] ^= 1 << (idx % blockSize)
}

// XOr computes a bitwise XOR between d and other. If one of the two is
// shorter than the other, then trailing 0s are implicitly added to make the
// sizes match.
func (d Dense) XOr(other Dense) Dense {
	short, long := other, d
	if d.len < other.len {
		short, long = d, other
	}
	r := Dense{
		bits: make([]byte, 0, len(long.bits)),
		len:  long.len,
	}
	for i := range short.bits {
		r.bits = append(r.bits, short.bits[i]^long.bits[i])
	}
	r.bits = append(r.bits, long.bits[len(short.bits):]...)
	return r
}

// And computes a bitwise AND between d and other.
func (d Dense) And(other Dense) Dense {
	short, long := other, d
	if d.len < other.len {
		short, long = d, other
	}
	r := Dense{
		bits: make([]byte, 0, len(short.bits)),
		len:  short.len,
	}
	for i := range short.bits {
		r.bits = append(r.bits, short.bits[i]&long.bits[i])
	}
	return r
}

// Dot computes the inner product of x and y over GF(2), with true
// corresponding to 1 and false to 0.
func Dot(x, y Dense) bool {
	n := len(x.bits)
	if len(y.bits) < n {
		n = len(y.bits)
	}
	var sum byte
	for i := 0; i < n; i++ {
		sum ^= x.bits[i] & y.bits[i]
	}
	return bits.OnesCount8(sum)%2 == 1
}

// Parity returns the overall parity of d, with true corresponding to 1 and
// false to 0.
func (d Dense) Parity() bool {
	var sum byte
	for _, b := range d.bits {
		sum ^= b
	}
	return bits.OnesCount8(sum)%2 == 1
}

// CountOnes returns the total number of bits set in d.
func (d Dense) CountOnes() int {
	var sum int
	for _, b := range d.bits {
		sum += bits.OnesCount8(b)
	}
	return sum
}

// Zero reports whether no bit of d is set.
func (d Dense) Zero() bool {
	return d.CountOnes() == 0
}

// Equal returns true iff a and b have the same length and contain the same
// bits.
func Equal(a, b Dense) bool {
	return a.len == b.len && a.XOr(b).CountOnes() == 0
}

// String renders d as a string of '0's and '1's, leftmost bit first.
func (d Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.len; i++ {
		if d.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// BytesFor returns the number of bytes necessary to hold the provided
// number of bits.
func BytesFor(bits int) int {
	return (bits + blockSize - 1) / blockSize
}

func (d *Dense) clearTail() {
	off := d.len % blockSize
	if off == 0 || len(d.bits) == 0 {
		return
	}
	d.bits[len(d.bits)-1] &= 0xFF >> (blockSize - off)
}

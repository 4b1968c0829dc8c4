package bitword

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxBits is the widest supported word.
const MaxBits = 64

var (
	ErrWordLength     = errors.New("bitword: word length out of range")
	ErrBitRange       = errors.New("bitword: bit position out of range")
	ErrLengthMismatch = errors.New("bitword: word lengths differ")
)

// Word is an immutable attribute set of a declared length n, 0 <= n <= 64.
// The zero Word is the empty set over a zero-attribute universe.
type Word struct {
	n    int
	bits uint64
}

func mask(n int) uint64 {
	if n == MaxBits {
		return ^uint64(0)
	}
	return 1<<n - 1
}

func checkLength(n int) {
	if n < 0 || n > MaxBits {
		panic(fmt.Errorf("%w: %d", ErrWordLength, n))
	}
}

func (w Word) checkBit(i int) {
	if i < 0 || i >= w.n {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrBitRange, i, w.n))
	}
}

func (w Word) checkMatch(o Word) {
	if w.n != o.n {
		panic(fmt.Errorf("%w: %d != %d", ErrLengthMismatch, w.n, o.n))
	}
}

// New returns the empty set over n attributes.
func New(n int) Word {
	checkLength(n)
	return Word{n: n}
}

// Ones returns the full set over n attributes.
func Ones(n int) Word {
	checkLength(n)
	return Word{n: n, bits: mask(n)}
}

// FromBits returns the word with the given raw value, masked to n bits.
func FromBits(n int, bits uint64) Word {
	checkLength(n)
	return Word{n: n, bits: bits & mask(n)}
}

// FromIndices returns the word over n attributes with the given bit
// positions set.
func FromIndices(n int, indices ...int) Word {
	w := New(n)
	for _, i := range indices {
		w.checkBit(i)
		w.bits |= 1 << i
	}
	return w
}

// Len is the declared length of the word in bits.
func (w Word) Len() int { return w.n }

// Bits is the raw value of the word.
func (w Word) Bits() uint64 { return w.bits }

// PopCount is the number of set bits.
func (w Word) PopCount() int { return bits.OnesCount64(w.bits) }

func (w Word) IsZero() bool { return w.bits == 0 }

func (w Word) IsOnes() bool { return w.bits == mask(w.n) }

// Indices returns the set bit positions in ascending order.
func (w Word) Indices() []int {
	out := make([]int, 0, w.PopCount())
	for b := w.bits; b != 0; b &= b - 1 {
		out = append(out, bits.TrailingZeros64(b))
	}
	return out
}

// Bit returns bit i as 0 or 1.
func (w Word) Bit(i int) int {
	w.checkBit(i)
	return int(w.bits >> i & 1)
}

// Has reports whether bit i is set.
func (w Word) Has(i int) bool {
	w.checkBit(i)
	return w.bits&(1<<i) != 0
}

// SetBit returns a copy of w with bit i set to b.
func (w Word) SetBit(i int, b bool) Word {
	w.checkBit(i)
	if b {
		w.bits |= 1 << i
	} else {
		w.bits &^= 1 << i
	}
	return w
}

// ClearBit returns a copy of w with bit i cleared.
func (w Word) ClearBit(i int) Word { return w.SetBit(i, false) }

// FlipBit returns a copy of w with bit i inverted.
func (w Word) FlipBit(i int) Word {
	w.checkBit(i)
	w.bits ^= 1 << i
	return w
}

func (w Word) And(o Word) Word {
	w.checkMatch(o)
	return Word{n: w.n, bits: w.bits & o.bits}
}

func (w Word) Or(o Word) Word {
	w.checkMatch(o)
	return Word{n: w.n, bits: w.bits | o.bits}
}

func (w Word) Xor(o Word) Word {
	w.checkMatch(o)
	return Word{n: w.n, bits: w.bits ^ o.bits}
}

// Not returns the complement of w within its length.
func (w Word) Not() Word {
	return Word{n: w.n, bits: ^w.bits & mask(w.n)}
}

// Eq reports structural equality. Words of differing lengths are never
// equal. Word is comparable, so == is equivalent.
func (w Word) Eq(o Word) bool { return w == o }

// SubsetOf reports whether every attribute of w is in o.
func (w Word) SubsetOf(o Word) bool {
	w.checkMatch(o)
	return w.bits&o.bits == w.bits
}

// ProperSubsetOf reports whether w is a subset of o and w != o.
func (w Word) ProperSubsetOf(o Word) bool {
	return w.SubsetOf(o) && w.bits != o.bits
}

// Compare orders same-length words by raw value: -1, 0 or +1.
func (w Word) Compare(o Word) int {
	w.checkMatch(o)
	switch {
	case w.bits < o.bits:
		return -1
	case w.bits > o.bits:
		return 1
	}
	return 0
}

// String renders the word in binary, most significant bit first, zero
// padded to the declared length.
func (w Word) String() string {
	if w.n == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", w.n, w.bits)
}

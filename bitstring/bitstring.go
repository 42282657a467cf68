package bitstring

import (
	"math/bits"
	"sort"
)

const wordBits = 64

// BitString is an immutable, arbitrary-width bit-mask packed into 64-bit
// words, little-endian: bit i of the logical integer lives in word i/64,
// bit i%64 of that word.
//
// The zero value is the empty set (all bits clear) and is ready to use.
type BitString struct {
	words []uint64 // trimmed: words[len(words)-1] != 0, or len(words) == 0
}

// Zero returns the empty BitString. Equivalent to the zero value; provided
// for symmetry with FromIndices.
func Zero() BitString {
	return BitString{}
}

// FromIndices sets bit i for each i in idx. Duplicate indices are
// idempotent. Indices name qubit/stabilizer positions and are never
// negative; a negative index is caller error and panics inside SetBit
// (negative shift or slice index) rather than being validated here.
func FromIndices(idx ...int) BitString {
	b := BitString{}
	for _, i := range idx {
		b = b.SetBit(i)
	}

	return b
}

// ToIndices returns the ascending positions of set bits.
func (b BitString) ToIndices() []int {
	out := make([]int, 0, b.Popcount())
	for w, word := range b.words {
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			out = append(out, w*wordBits+tz)
			word &= word - 1 // clear lowest set bit
		}
	}

	return out
}

// Popcount returns the number of set bits.
func (b BitString) Popcount() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Test reports whether bit i is set.
func (b BitString) Test(i int) bool {
	word, bit := wordIndex(i)
	if word >= len(b.words) {
		return false
	}

	return b.words[word]&(uint64(1)<<bit) != 0
}

// SetBit returns a new BitString equal to b with bit i set.
func (b BitString) SetBit(i int) BitString {
	word, bit := wordIndex(i)
	words := growTo(b.words, word+1)
	words[word] |= uint64(1) << bit

	return BitString{words: trim(words)}
}

// ClearBit returns a new BitString equal to b with bit i cleared.
func (b BitString) ClearBit(i int) BitString {
	word, bit := wordIndex(i)
	if word >= len(b.words) {
		return b
	}
	words := append([]uint64(nil), b.words...)
	words[word] &^= uint64(1) << bit

	return BitString{words: trim(words)}
}

// And returns the bitwise intersection of b and o.
func (b BitString) And(o BitString) BitString {
	n := minLen(len(b.words), len(o.words))
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		words[i] = b.words[i] & o.words[i]
	}

	return BitString{words: trim(words)}
}

// Or returns the bitwise union of b and o.
func (b BitString) Or(o BitString) BitString {
	n := maxLen(len(b.words), len(o.words))
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		words[i] = wordAt(b.words, i) | wordAt(o.words, i)
	}

	return BitString{words: trim(words)}
}

// Xor returns the bitwise symmetric difference of b and o.
func (b BitString) Xor(o BitString) BitString {
	n := maxLen(len(b.words), len(o.words))
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		words[i] = wordAt(b.words, i) ^ wordAt(o.words, i)
	}

	return BitString{words: trim(words)}
}

// AndNot returns b with every bit set in o cleared (b &^ o).
func (b BitString) AndNot(o BitString) BitString {
	n := minLen(len(b.words), len(o.words))
	words := append([]uint64(nil), b.words...)
	for i := 0; i < n; i++ {
		words[i] &^= o.words[i]
	}

	return BitString{words: trim(words)}
}

// IsZero reports whether no bits are set.
func (b BitString) IsZero() bool {
	return len(b.words) == 0
}

// Equal reports whether b and o have exactly the same set bits.
func (b BitString) Equal(o BitString) bool {
	if len(b.words) != len(o.words) {
		return false
	}
	for i := range b.words {
		if b.words[i] != o.words[i] {
			return false
		}
	}

	return true
}

// Union is a variadic convenience over Or, used when folding many
// stabilizers' supports into one mask (e.g. a cluster's growth frontier).
func Union(bs ...BitString) BitString {
	acc := Zero()
	for _, b := range bs {
		acc = acc.Or(b)
	}

	return acc
}

// SortedRoots returns an ascending copy of roots (the collected keys of a
// root->value map), used throughout unionfind to make iteration order deterministic
// regardless of Go's randomized map iteration.
func SortedRoots(roots []int) []int {
	out := append([]int(nil), roots...)
	sort.Ints(out)

	return out
}

func wordIndex(i int) (word, bit int) {
	return i / wordBits, i % wordBits
}

func growTo(words []uint64, n int) []uint64 {
	if len(words) >= n {
		return append([]uint64(nil), words...)
	}
	grown := make([]uint64, n)
	copy(grown, words)

	return grown
}

func wordAt(words []uint64, i int) uint64 {
	if i >= len(words) {
		return 0
	}

	return words[i]
}

func trim(words []uint64) []uint64 {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}

	return words[:n]
}

func minLen(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}

	return b
}

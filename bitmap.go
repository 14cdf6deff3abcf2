// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitops

import (
	"iter"
	"math/bits"
)

// WordBits is the width of a bitmap word in bits.
const WordBits = bits.UintSize

// Bitmap is a flat array of single-bit flags stored in machine words.
// Bit i lives in word i/WordBits at position i%WordBits.
//
// The caller owns the backing slice and must size it to cover every
// index it uses; the methods never allocate, resize, or bounds-check
// beyond the runtime's own slice checks. Any []uint works:
//
//	b := bitops.New(128)        // sized constructor
//	b := bitops.Bitmap(words)   // adopt an existing slice
//
// Bitmap performs plain memory accesses. Concurrent mutation of the
// same words without external synchronization races like any other
// shared-memory read-modify-write; use AtomicBitmap where that matters.
type Bitmap []uint

// Words returns the number of words needed to hold nbits bits.
func Words(nbits int) int {
	return DivRoundUp(nbits, WordBits)
}

// New returns a zeroed bitmap capable of holding nbits bits.
func New(nbits int) Bitmap {
	return make(Bitmap, Words(nbits))
}

// Set sets bit to 1.
func (b Bitmap) Set(bit int) {
	b[bit/WordBits] |= 1 << (bit % WordBits)
}

// Clear sets bit to 0.
func (b Bitmap) Clear(bit int) {
	b[bit/WordBits] &^= 1 << (bit % WordBits)
}

// Test reports whether bit is set.
func (b Bitmap) Test(bit int) bool {
	return b[bit/WordBits]&(1<<(bit%WordBits)) != 0
}

// IsClear reports whether bit is clear. Complement of Test.
func (b Bitmap) IsClear(bit int) bool {
	return !b.Test(bit)
}

// NextSet returns the index of the first set bit in [start, max),
// or max if there is none. start may be >= max.
//
// The bitmap must cover max bits.
func (b Bitmap) NextSet(start, max int) int {
	for bit := start; bit < max; {
		// Remaining bits of the current word, shifted to position 0.
		word := b[bit/WordBits] >> (bit % WordBits)
		if word != 0 {
			n := bit + bits.TrailingZeros(word)
			return Min(n, max)
		}
		bit += WordBits - bit%WordBits
	}
	return max
}

// NextClear returns the index of the first clear bit in [start, max),
// or max if there is none. start may be >= max.
//
// The bitmap must cover max bits.
func (b Bitmap) NextClear(start, max int) int {
	for bit := start; bit < max; {
		word := ^b[bit/WordBits] >> (bit % WordBits)
		if word != 0 {
			n := bit + bits.TrailingZeros(word)
			return Min(n, max)
		}
		bit += WordBits - bit%WordBits
	}
	return max
}

// SetBits returns an iterator over the set bits in [0, max), ascending.
//
// The sequence is lazy: bits set behind the cursor during iteration are
// not revisited, bits changed ahead of it are observed.
//
//	for bit := range b.SetBits(n) {
//	    ...
//	}
func (b Bitmap) SetBits(max int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for bit := b.NextSet(0, max); bit < max; bit = b.NextSet(bit+1, max) {
			if !yield(bit) {
				return
			}
		}
	}
}

// ClearBits returns an iterator over the clear bits in [0, max),
// ascending. Lazy in the same way as SetBits.
func (b Bitmap) ClearBits(max int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for bit := b.NextClear(0, max); bit < max; bit = b.NextClear(bit+1, max) {
			if !yield(bit) {
				return
			}
		}
	}
}

// Count returns the number of set bits in [0, max).
//
// The bitmap must cover max bits.
func (b Bitmap) Count(max int) int {
	n := 0
	full := max / WordBits
	for _, w := range b[:full] {
		n += bits.OnesCount(w)
	}
	if rem := max % WordBits; rem > 0 {
		n += bits.OnesCount(b[full] & (1<<rem - 1))
	}
	return n
}

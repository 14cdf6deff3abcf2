// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitops

import (
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// atomicWordBits is the width of an AtomicBitmap word. Fixed at 64
// regardless of platform so the CAS granularity is predictable.
const atomicWordBits = 64

// AtomicBitmap is a bitmap whose bits are updated with single-word
// atomic read-modify-write loops. It is safe for concurrent use by
// multiple goroutines without external synchronization.
//
// A successful Set/Clear/TrySet/FindAndSet publishes with release
// semantics; Test observes with acquire semantics. A goroutine that
// sees a bit set by TrySet therefore also sees all writes the setter
// made before claiming it.
//
// Typical use is a concurrent free-slot allocator:
//
//	slots := bitops.NewAtomicBitmap(1024)
//
//	// Claim
//	i := slots.FindAndSet(1024)
//	if i == 1024 {
//	    // all slots in use
//	}
//
//	// Release
//	slots.Clear(i)
type AtomicBitmap struct {
	words []atomix.Uint64
	nbits int
}

// NewAtomicBitmap returns a zeroed atomic bitmap holding nbits bits.
// Panics if nbits < 1.
func NewAtomicBitmap(nbits int) *AtomicBitmap {
	if nbits < 1 {
		panic("bitops: bitmap size must be >= 1")
	}
	return &AtomicBitmap{
		words: make([]atomix.Uint64, DivRoundUp(nbits, atomicWordBits)),
		nbits: nbits,
	}
}

// Bits returns the number of bits the bitmap holds.
func (b *AtomicBitmap) Bits() int {
	return b.nbits
}

// Set atomically sets bit to 1.
func (b *AtomicBitmap) Set(bit int) {
	w := &b.words[bit/atomicWordBits]
	mask := uint64(1) << (bit % atomicWordBits)
	sw := spin.Wait{}
	for {
		old := w.LoadRelaxed()
		if old&mask != 0 {
			return
		}
		if w.CompareAndSwapAcqRel(old, old|mask) {
			return
		}
		sw.Once()
	}
}

// Clear atomically sets bit to 0.
func (b *AtomicBitmap) Clear(bit int) {
	w := &b.words[bit/atomicWordBits]
	mask := uint64(1) << (bit % atomicWordBits)
	sw := spin.Wait{}
	for {
		old := w.LoadRelaxed()
		if old&mask == 0 {
			return
		}
		if w.CompareAndSwapAcqRel(old, old&^mask) {
			return
		}
		sw.Once()
	}
}

// Test reports whether bit is set.
func (b *AtomicBitmap) Test(bit int) bool {
	return b.words[bit/atomicWordBits].LoadAcquire()&(1<<(bit%atomicWordBits)) != 0
}

// TrySet attempts to flip bit from 0 to 1 and reports whether this
// caller performed the flip. Exactly one of any number of concurrent
// TrySet calls on the same clear bit returns true.
func (b *AtomicBitmap) TrySet(bit int) bool {
	w := &b.words[bit/atomicWordBits]
	mask := uint64(1) << (bit % atomicWordBits)
	sw := spin.Wait{}
	for {
		old := w.LoadRelaxed()
		if old&mask != 0 {
			return false
		}
		if w.CompareAndSwapAcqRel(old, old|mask) {
			return true
		}
		// CAS lost to an update of another bit in the word; retry.
		sw.Once()
	}
}

// Count returns the number of set bits in [0, max). The count is a
// snapshot: concurrent updates may or may not be included.
// max must not exceed Bits().
func (b *AtomicBitmap) Count(max int) int {
	n := 0
	full := max / atomicWordBits
	for i := range full {
		n += bits.OnesCount64(b.words[i].LoadAcquire())
	}
	if rem := max % atomicWordBits; rem > 0 {
		n += bits.OnesCount64(b.words[full].LoadAcquire() & (1<<uint(rem) - 1))
	}
	return n
}

// FindAndSet finds a clear bit in [0, max), atomically sets it, and
// returns its index. Returns max when every bit in the range is set.
//
// The scan prefers low indexes but concurrent callers may leapfrog
// each other within a word; the only guarantee is that no two callers
// claim the same bit. max must not exceed Bits().
func (b *AtomicBitmap) FindAndSet(max int) int {
	sw := spin.Wait{}
	for base := 0; base < max; base += atomicWordBits {
		w := &b.words[base/atomicWordBits]
		for {
			old := w.LoadAcquire()
			free := ^old
			if max-base < atomicWordBits {
				free &= 1<<uint(max-base) - 1
			}
			if free == 0 {
				break
			}
			bit := bits.TrailingZeros64(free)
			if w.CompareAndSwapAcqRel(old, old|1<<bit) {
				return base + bit
			}
			sw.Once()
		}
	}
	return max
}

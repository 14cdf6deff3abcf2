// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bitops provides low-level bit manipulation, alignment, and
// structure layout utilities.
//
// The package is a leaf library: every helper is a freestanding pure
// function (or a method on a caller-owned slice) with no allocation
// beyond the explicit constructors, no I/O, and no internal state.
//
//   - Bitmap: word-slice bitmaps with set/clear/test, forward scans,
//     and range-over-func iteration
//   - AtomicBitmap: the same bit operations with atomic word updates,
//     plus scan-and-claim for concurrent free-slot allocation
//   - AlignDown/AlignUp, PtrAlignDown/PtrAlignUp: power-of-two rounding
//     for sizes and addresses
//   - DivRoundDown/DivRoundUp: floor and ceiling integer division
//   - OffsetOf/ContainerOf: field offsets and enclosing-struct recovery
//   - Log2, IsPowerOfTwo, CeilPow2, FloorPow2: power-of-two math
//   - Min/Max/Sign/Dim/Unused: small numeric conveniences
//
// # Quick Start
//
// Track used slots in a fixed pool:
//
//	used := bitops.New(64)
//	used.Set(3)
//	used.Set(17)
//
//	for bit := range used.SetBits(64) {
//	    fmt.Println(bit) // 3, 17
//	}
//
// Round a buffer size up to a cache line:
//
//	size := bitops.AlignUp(n, 64)
//
// Recover an enclosing struct from a pointer to one of its fields:
//
//	type conn struct {
//	    fd    int
//	    stats connStats
//	}
//
//	c := bitops.ContainerOf[conn](unsafe.Pointer(s), "stats")
//
// # Preconditions
//
// The helpers follow the contract of the hardware-facing utilities they
// descend from: preconditions are documented, not checked, except where
// a violation would silently corrupt results. Alignment values must be
// powers of two. Bit indexes must be covered by the bitmap the caller
// allocated. Log2 and OffsetOf panic on violated preconditions;
// everything else trusts the caller.
//
// # Concurrency
//
// Bitmap performs plain memory accesses and leaves synchronization to
// the caller. AtomicBitmap uses single-word atomic read-modify-write
// loops and is safe for concurrent use; see its documentation for the
// ordering guarantees.
package bitops

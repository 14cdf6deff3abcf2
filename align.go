// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitops

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// AlignDown rounds size down to the nearest multiple of align.
// align must be a power of two (not checked).
func AlignDown[T constraints.Integer](size, align T) T {
	return size &^ (align - 1)
}

// AlignUp rounds size up to the nearest multiple of align.
// align must be a power of two (not checked).
func AlignUp[T constraints.Integer](size, align T) T {
	return AlignDown(size+align-1, align)
}

// PtrAlignDown rounds the address p down to the nearest multiple of
// align. align must be a power of two (not checked).
//
// The result stays within the allocation p points into as long as that
// allocation itself starts at an align-multiple boundary; ensuring this
// is the caller's responsibility.
func PtrAlignDown(p unsafe.Pointer, align uintptr) unsafe.Pointer {
	return unsafe.Pointer(uintptr(p) &^ (align - 1))
}

// PtrAlignUp rounds the address p up to the nearest multiple of align.
// align must be a power of two (not checked).
func PtrAlignUp(p unsafe.Pointer, align uintptr) unsafe.Pointer {
	return unsafe.Pointer(AlignUp(uintptr(p), align))
}

// DivRoundDown returns num/den rounded toward zero.
func DivRoundDown[T constraints.Integer](num, den T) T {
	return num / den
}

// DivRoundUp returns num/den rounded up.
// Both operands must be non-negative and den must be non-zero; the
// result for negative operands is unspecified.
func DivRoundUp[T constraints.Integer](num, den T) T {
	return DivRoundDown(num+den-1, den)
}

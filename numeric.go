// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitops

import "golang.org/x/exp/constraints"

// Unused marks a value as intentionally unread.
//
// It compiles to nothing and exists so call sites can document that a
// parameter or result is deliberately ignored:
//
//	func handler(ev event, ctx uintptr) {
//	    bitops.Unused(ctx)
//	    ...
//	}
func Unused[T any](_ T) {}

// Dim returns the number of elements in s.
//
// Callers holding a fixed-size array pass a full slice of it:
//
//	var regs [8]uint32
//	n := bitops.Dim(regs[:]) // 8
func Dim[S ~[]E, E any](s S) int {
	return len(s)
}

// Min returns the smaller of x and y.
// Each argument is evaluated exactly once.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
// Each argument is evaluated exactly once.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Sign returns -1, 0, or +1 for negative, zero, or positive x.
func Sign[T constraints.Signed | constraints.Float](x T) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitops

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Log2 returns the exponent e such that 1<<e == v.
//
// v must be a power of two. Panics otherwise; unlike the helpers with
// documented-only preconditions, a violation here would silently yield
// the log of a nearby value, so it fails fast instead.
func Log2(v uint) uint {
	if v == 0 || v&(v-1) != 0 {
		panic("bitops: Log2 argument must be a power of two")
	}
	return uint(bits.TrailingZeros(v))
}

// IsPowerOfTwo reports whether v is a power of two.
// Zero and negative values are not powers of two.
func IsPowerOfTwo[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// CeilPow2 returns the smallest power of two >= n.
// CeilPow2(0) and CeilPow2(1) are both 1.
// Panics if the result does not fit in a uint.
func CeilPow2(n uint) uint {
	if n <= 1 {
		return 1
	}
	if n > 1<<(bits.UintSize-1) {
		panic("bitops: CeilPow2 argument too large")
	}
	return 1 << bits.Len(n-1)
}

// FloorPow2 returns the largest power of two <= n, or 0 when n is 0.
func FloorPow2(n uint) uint {
	if n == 0 {
		return 0
	}
	return 1 << (bits.Len(n) - 1)
}

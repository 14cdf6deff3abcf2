// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitops_test

import (
	"testing"

	"code.hybscloud.com/bitops"
)

// =============================================================================
// Numeric Helpers
// =============================================================================

func TestMinMax(t *testing.T) {
	if got := bitops.Min(3, 5); got != 3 {
		t.Errorf("Min(3, 5): got %d, want 3", got)
	}
	if got := bitops.Max(3, 5); got != 5 {
		t.Errorf("Max(3, 5): got %d, want 5", got)
	}
	if got := bitops.Min(-1, 1); got != -1 {
		t.Errorf("Min(-1, 1): got %d, want -1", got)
	}
	if got := bitops.Max(2.5, 2.25); got != 2.5 {
		t.Errorf("Max(2.5, 2.25): got %v, want 2.5", got)
	}
	if got := bitops.Min("a", "b"); got != "a" {
		t.Errorf(`Min("a", "b"): got %q, want "a"`, got)
	}
	// Equal arguments: either is acceptable, but the result must equal them.
	if got := bitops.Min(4, 4); got != 4 {
		t.Errorf("Min(4, 4): got %d, want 4", got)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-7, -1},
		{-1, -1},
		{0, 0},
		{1, 1},
		{4, 1},
	}
	for _, tt := range tests {
		if got := bitops.Sign(tt.in); got != tt.want {
			t.Errorf("Sign(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}

	if got := bitops.Sign(-0.5); got != -1 {
		t.Errorf("Sign(-0.5): got %d, want -1", got)
	}
	if got := bitops.Sign(0.0); got != 0 {
		t.Errorf("Sign(0.0): got %d, want 0", got)
	}
}

func TestDim(t *testing.T) {
	var regs [8]uint32
	if got := bitops.Dim(regs[:]); got != 8 {
		t.Errorf("Dim of 8-element array: got %d, want 8", got)
	}

	if got := bitops.Dim([]byte(nil)); got != 0 {
		t.Errorf("Dim of nil slice: got %d, want 0", got)
	}

	type descriptor struct{ addr, len uint64 }
	ring := make([]descriptor, 16)
	if got := bitops.Dim(ring); got != 16 {
		t.Errorf("Dim of 16-element slice: got %d, want 16", got)
	}
}

func TestUnused(t *testing.T) {
	// Must accept any value and do nothing.
	bitops.Unused(42)
	bitops.Unused("ignored")
	bitops.Unused(struct{ x int }{1})
	var p *int
	bitops.Unused(p)
}

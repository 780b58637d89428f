package testutil

import (
	"math"
	"testing"
)

// RequireBitsEqual fails t unless got and want have the same length and
// identical IEEE-754 bit patterns at every index, so NaN matches NaN and
// -0 differs from +0.
func RequireBitsEqual(t testing.TB, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

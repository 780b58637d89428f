package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func noop(dst, src []float64) {}

func TestLookupPrefersHighestSupportedPriority(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Abs: noop})
	r.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Abs: noop})
	r.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Abs: noop})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"none", cpu.Features{}, "generic"},
		{"sse2", cpu.Features{HasSSE2: true}, "sse2"},
		{"avx2", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{"forced-generic", cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := r.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}

			if entry.Name != tt.want {
				t.Fatalf("Lookup = %q, want %q", entry.Name, tt.want)
			}
		})
	}
}

func TestLookupEmptyRegistry(t *testing.T) {
	r := &OpRegistry{}
	if entry := r.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("Lookup on empty registry = %q, want nil", entry.Name)
	}
}

func TestSortIsStableForEqualPriority(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "first", SIMDLevel: cpu.SIMDNone, Priority: 5})
	r.Register(OpEntry{Name: "second", SIMDLevel: cpu.SIMDNone, Priority: 5})
	r.Register(OpEntry{Name: "top", SIMDLevel: cpu.SIMDNone, Priority: 9})

	if got := r.Lookup(cpu.Features{}).Name; got != "top" {
		t.Fatalf("Lookup = %q, want top", got)
	}

	entries := r.ListEntries()
	if entries[1].Name != "first" || entries[2].Name != "second" {
		t.Fatalf("unexpected order: %q, %q", entries[1].Name, entries[2].Name)
	}
}

func TestListEntriesReturnsCopyAndReset(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "generic"})

	entries := r.ListEntries()
	entries[0].Name = "mutated"

	if got := r.ListEntries()[0].Name; got != "generic" {
		t.Fatalf("registry entry changed through copy: %q", got)
	}

	r.Reset()

	if n := len(r.ListEntries()); n != 0 {
		t.Fatalf("after Reset: %d entries, want 0", n)
	}
}

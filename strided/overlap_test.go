package strided

import "testing"

func TestWindowsOverlap(t *testing.T) {
	buf := make([]float64, 16)
	other := make([]float64, 16)

	tests := []struct {
		name             string
		x, y             []float64
		n                int
		strideX, offsetX int
		strideY, offsetY int
		want             bool
	}{
		{"distinct-buffers", buf, other, 16, 1, 0, 1, 0, false},
		{"same-window", buf, buf, 4, 1, 0, 1, 0, true},
		{"adjacent", buf, buf, 4, 1, 0, 1, 4, false},
		{"shifted-by-one", buf, buf, 4, 1, 0, 1, 3, true},
		{"reverse-overlap", buf, buf, 4, -1, 7, 1, 4, true},
		{"reverse-disjoint", buf, buf, 4, -1, 3, 1, 4, false},
		{"subslices", buf[2:], buf[5:], 4, 1, 0, 1, 0, true},
		{"subslices-disjoint", buf[2:], buf[6:], 4, 1, 0, 1, 0, false},
		{"empty", nil, buf, 4, 1, 0, 1, 0, false},
		{"zero-count", buf, buf, 0, 1, 0, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := windowsOverlap(tt.n, tt.x, tt.strideX, tt.offsetX, tt.y, tt.strideY, tt.offsetY)
			if got != tt.want {
				t.Fatalf("windowsOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameStart(t *testing.T) {
	buf := make([]float32, 8)

	if !sameStart(buf, 3, buf[1:], 2) {
		t.Fatal("buf[3] and buf[1:][2] should be the same element")
	}

	if sameStart(buf, 0, buf, 1) {
		t.Fatal("different elements reported as same")
	}

	if sameStart(nil, 0, buf, 0) {
		t.Fatal("empty slice reported as same start")
	}
}

package mathutil

import "testing"

func TestIntHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"min", IntMin(3, -2), -2},
		{"max", IntMax(3, -2), 3},
		{"clamp below", IntClamp(-5, 0, 10), 0},
		{"clamp above", IntClamp(15, 0, 10), 10},
		{"clamp inside", IntClamp(7, 0, 10), 7},
		{"clamp empty range", IntClamp(7, 10, 0), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: Expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}

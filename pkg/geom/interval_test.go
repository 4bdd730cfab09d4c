package geom

import (
	"reflect"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 float64
		want           bool
	}{
		{"disjoint", 0, 10, 11, 20, false},
		{"touching", 0, 10, 10, 20, true},
		{"nested", 0, 10, 2, 3, true},
		{"reversed bounds", 10, 0, 20, 5, true},
		{"points equal", 5, 5, 5, 5, true},
		{"points apart", 5, 5, 6, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
				t.Errorf("Overlaps(%v, %v, %v, %v) = %v, want %v", tt.a1, tt.a2, tt.b1, tt.b2, got, tt.want)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name           string
		s1, s2, c1, c2 float64
		want           [][2]float64
	}{
		{"no overlap", 0, 100, 200, 300, [][2]float64{{0, 100}}},
		{"cover all", 0, 100, -10, 110, nil},
		{"cover exact", 0, 100, 0, 100, nil},
		{"cover right half", 0, 100, 50, 150, [][2]float64{{0, 50}}},
		{"cover left half", 0, 100, -50, 50, [][2]float64{{50, 100}}},
		{"cover middle", 0, 100, 40, 60, [][2]float64{{0, 40}, {60, 100}}},
		{"touching end", 0, 100, 100, 200, [][2]float64{{0, 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract(tt.s1, tt.s2, tt.c1, tt.c2)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Subtract = %v, want %v", got, tt.want)
			}
		})
	}
}

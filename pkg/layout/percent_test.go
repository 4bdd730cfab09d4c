package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

func TestPercentageCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		container geom.Rectangle
		p         geom.Point
		want      geom.Point
	}{
		{"origin container", geom.Rect(0, 0, 400, 300), geom.Pt(100, 150), geom.Pt(25, 50)},
		{"offset container", geom.Rect(100, 50, 200, 100), geom.Pt(150, 75), geom.Pt(25, 25)},
		{"rounded", geom.Rect(0, 0, 300, 300), geom.Pt(100, 200), geom.Pt(33.3333, 66.6667)},
		{"zero width", geom.Rect(0, 0, 0, 100), geom.Pt(10, 10), geom.Pt(0, 10)},
		{"beyond container", geom.Rect(0, 0, 100, 100), geom.Pt(-10, 150), geom.Pt(-10, 150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentageCoordinates(tt.container, tt.p); got != tt.want {
				t.Errorf("PercentageCoordinates = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercentRoundTrip(t *testing.T) {
	containers := []geom.Rectangle{
		geom.Rect(0, 0, 400, 300),
		geom.Rect(17, 33, 1280, 720),
		geom.Rect(-50, 10, 333, 77),
	}
	percents := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(12.3456, 78.9),
		geom.Pt(100, 100),
		geom.Pt(50.5, 0.0001),
	}

	for _, c := range containers {
		for _, p := range percents {
			back := PercentageCoordinates(c, PixelCoordinates(c, p))
			if math.Abs(back.X-p.X) > 1e-4 || math.Abs(back.Y-p.Y) > 1e-4 {
				t.Errorf("round trip of %v in %v gave %v", p, c, back)
			}
		}
	}
}

func TestPercentageSize(t *testing.T) {
	c := geom.Rect(0, 0, 400, 300)

	got := PercentageSize(c, geom.PixelSize(100, 150))
	if want := geom.PercentSize(25, 50); got != want {
		t.Errorf("PercentageSize(px) = %v, want %v", got, want)
	}

	in := geom.PercentSize(12, 34)
	if got := PercentageSize(c, in); got != in {
		t.Errorf("PercentageSize(%%) = %v, want unchanged %v", got, in)
	}
}

package layout

import (
	"math"

	"github.com/matzehuels/dashlayout/pkg/geom"
)

// PercentPrecision is the number of decimal places kept in percentage
// coordinates and sizes.
const PercentPrecision = 4

// PercentageCoordinates converts a pixel point into percent of the
// container, measured from its top-left corner. Axes on which the container
// has no extent map to zero.
func PercentageCoordinates(container geom.Rectangle, p geom.Point) geom.Point {
	return geom.Point{
		X: toPercent(p.X-container.Left(), container.Width()),
		Y: toPercent(p.Y-container.Top(), container.Height()),
	}
}

// PixelCoordinates converts percent of the container back into a pixel
// point.
func PixelCoordinates(container geom.Rectangle, percent geom.Point) geom.Point {
	return geom.Point{
		X: container.Left() + percent.X*container.Width()/100,
		Y: container.Top() + percent.Y*container.Height()/100,
	}
}

// PercentageSize converts a size into percent of the container.
func PercentageSize(container geom.Rectangle, s geom.Size) geom.Size {
	if s.Unit == geom.Percent {
		return s
	}
	return geom.PercentSize(
		toPercent(s.Width, container.Width()),
		toPercent(s.Height, container.Height()),
	)
}

func toPercent(v, extent float64) float64 {
	if extent == 0 {
		return 0
	}
	return round(v/extent*100, PercentPrecision)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

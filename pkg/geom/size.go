package geom

import (
	"fmt"

	"github.com/matzehuels/dashlayout/pkg/errors"
)

// Unit is the unit a [Size] is expressed in.
type Unit uint8

const (
	// Percent sizes are relative to the item's container at the moment
	// they are set.
	Percent Unit = iota
	// Pixels sizes are absolute.
	Pixels
)

// String returns the CSS-style suffix of the unit.
func (u Unit) String() string {
	switch u {
	case Percent:
		return "%"
	case Pixels:
		return "px"
	default:
		return ""
	}
}

// ParseUnit accepts "%", "percent", "px" and "pixels".
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "%", "percent", "percentage":
		return Percent, nil
	case "px", "pixel", "pixels":
		return Pixels, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q (must be px or %%)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(b []byte) error {
	v, err := ParseUnit(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Size is a width and height in a [Unit].
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   Unit    `json:"unit"`
}

// PixelSize returns a pixel size.
func PixelSize(w, h float64) Size { return Size{Width: w, Height: h, Unit: Pixels} }

// PercentSize returns a percentage size.
func PercentSize(w, h float64) Size { return Size{Width: w, Height: h, Unit: Percent} }

// InPixels resolves s against a container rectangle. Pixel sizes are
// returned unchanged.
func (s Size) InPixels(container Rectangle) Size {
	if s.Unit == Pixels {
		return s
	}
	return Size{
		Width:  s.Width * container.Width() / 100,
		Height: s.Height * container.Height() / 100,
		Unit:   Pixels,
	}
}

func (s Size) String() string {
	return fmt.Sprintf("%g%s × %g%s", s.Width, s.Unit, s.Height, s.Unit)
}

package layout

import (
	"strings"

	"github.com/matzehuels/dashlayout/pkg/errors"
)

// Direction is a set of cardinal resize directions. Diagonals are
// combinations, e.g. NorthEast = North|East.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West

	NorthEast = North | East
	NorthWest = North | West
	SouthEast = South | East
	SouthWest = South | West

	// AllDirections lets every edge take part in snapping, as during a drag.
	AllDirections = North | South | East | West
)

var directionLetters = []struct {
	letter byte
	dir    Direction
}{
	{'n', North},
	{'s', South},
	{'e', East},
	{'w', West},
}

// ParseDirection decomposes a handle string such as "n", "se" or "wn" into
// its cardinal letters. Unknown letters are ignored and opposing letters
// ("ns", "ew") cancel out, so the result is always a usable mask.
func ParseDirection(s string) Direction {
	var d Direction
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		for _, dl := range directionLetters {
			if dl.letter == c {
				d |= dl.dir
			}
		}
	}
	return d.normalize()
}

// ValidateDirection reports whether s is one of the eight handle names
// n, s, e, w, ne, nw, se, sw (in any letter order, case-insensitive).
// The empty string is valid and means "no axis".
func ValidateDirection(s string) error {
	if s == "" {
		return nil
	}
	lower := strings.ToLower(s)
	if len(lower) > 2 || strings.Trim(lower, "nsew") != "" {
		return errors.New(errors.ErrCodeInvalidDirection, "unknown resize direction %q (must be n, s, e, w, ne, nw, se or sw)", s)
	}
	d := ParseDirection(lower)
	if d == 0 || (len(lower) == 2 && (d.Vertical() == 0 || d.Horizontal() == 0)) {
		return errors.New(errors.ErrCodeInvalidDirection, "contradictory resize direction %q", s)
	}
	return nil
}

func (d Direction) normalize() Direction {
	if d&(North|South) == North|South {
		d &^= North | South
	}
	if d&(East|West) == East|West {
		d &^= East | West
	}
	return d
}

// Has reports whether every direction in o is part of d. Has(0) is true.
func (d Direction) Has(o Direction) bool { return d&o == o }

// Vertical returns the north/south part of d.
func (d Direction) Vertical() Direction { return d & (North | South) }

// Horizontal returns the east/west part of d.
func (d Direction) Horizontal() Direction { return d & (East | West) }

// String returns the handle name, vertical letter first ("ne", "s").
func (d Direction) String() string {
	var b strings.Builder
	for _, dl := range directionLetters {
		if d.Has(dl.dir) {
			b.WriteByte(dl.letter)
		}
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown
// handle names.
func (d *Direction) UnmarshalText(b []byte) error {
	if err := ValidateDirection(string(b)); err != nil {
		return err
	}
	*d = ParseDirection(string(b))
	return nil
}

package geom

import (
	"strings"

	"github.com/matzehuels/dashlayout/pkg/errors"
)

// SnapMode is a set of snapping behaviours. Inner and Outer may be combined.
type SnapMode uint8

const (
	// SnapNone disables snapping.
	SnapNone SnapMode = 0
	// SnapInner aligns same-type edges, e.g. left to left.
	SnapInner SnapMode = 1 << 0
	// SnapOuter aligns facing edges, e.g. right to left.
	SnapOuter SnapMode = 1 << 1
	// SnapBoth enables inner and outer snapping.
	SnapBoth = SnapInner | SnapOuter
)

// Union returns the modes enabled in either m or o.
func (m SnapMode) Union(o SnapMode) SnapMode { return m | o }

// Intersect returns the modes enabled in both m and o.
func (m SnapMode) Intersect(o SnapMode) SnapMode { return m & o }

// Has reports whether every mode in o is enabled in m. Has(SnapNone) is
// always true.
func (m SnapMode) Has(o SnapMode) bool { return m&o == o }

func (m SnapMode) String() string {
	switch m & SnapBoth {
	case SnapInner:
		return "inner"
	case SnapOuter:
		return "outer"
	case SnapBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseSnapMode accepts "none", "inner", "outer", "both" and the
// combination "inner+outer" (or "inner,outer"). Matching is case-insensitive.
func ParseSnapMode(s string) (SnapMode, error) {
	var m SnapMode
	for _, part := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '+' || r == ',' || r == '|' || r == ' '
	}) {
		switch part {
		case "none":
		case "inner":
			m |= SnapInner
		case "outer":
			m |= SnapOuter
		case "both":
			m |= SnapBoth
		default:
			return SnapNone, errors.New(errors.ErrCodeInvalidSnapMode, "unknown snap mode %q (must be none, inner, outer or both)", part)
		}
	}
	return m, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m SnapMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SnapMode) UnmarshalText(b []byte) error {
	v, err := ParseSnapMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

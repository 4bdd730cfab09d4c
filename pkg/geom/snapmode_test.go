package geom

import (
	"testing"

	"github.com/matzehuels/dashlayout/pkg/errors"
)

func TestSnapModeFlags(t *testing.T) {
	if !SnapBoth.Has(SnapInner) || !SnapBoth.Has(SnapOuter) {
		t.Error("SnapBoth should contain inner and outer")
	}
	if SnapOuter.Has(SnapInner) {
		t.Error("SnapOuter should not contain inner")
	}
	if got := SnapInner.Union(SnapOuter); got != SnapBoth {
		t.Errorf("Union = %v, want both", got)
	}
	if got := SnapBoth.Intersect(SnapOuter); got != SnapOuter {
		t.Errorf("Intersect = %v, want outer", got)
	}
	if got := SnapNone.Union(SnapNone); got != SnapNone {
		t.Errorf("none ∪ none = %v", got)
	}
}

func TestParseSnapMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SnapMode
		wantErr bool
	}{
		{"", SnapNone, false},
		{"none", SnapNone, false},
		{"inner", SnapInner, false},
		{"OUTER", SnapOuter, false},
		{"both", SnapBoth, false},
		{"inner+outer", SnapBoth, false},
		{"inner,outer", SnapBoth, false},
		{"sideways", SnapNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSnapMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSnapMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidSnapMode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSnapMode)
			}
			if got != tt.want {
				t.Errorf("ParseSnapMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSnapModeText(t *testing.T) {
	var m SnapMode
	if err := m.UnmarshalText([]byte("both")); err != nil {
		t.Fatal(err)
	}
	b, _ := m.MarshalText()
	if string(b) != "both" {
		t.Errorf("MarshalText = %q, want both", b)
	}
}

func TestParseUnit(t *testing.T) {
	if u, err := ParseUnit("%"); err != nil || u != Percent {
		t.Errorf("ParseUnit(%%) = %v, %v", u, err)
	}
	if u, err := ParseUnit("px"); err != nil || u != Pixels {
		t.Errorf("ParseUnit(px) = %v, %v", u, err)
	}
	if _, err := ParseUnit("em"); !errors.Is(err, errors.ErrCodeInvalidUnit) {
		t.Errorf("ParseUnit(em) error = %v, want INVALID_UNIT", err)
	}
}

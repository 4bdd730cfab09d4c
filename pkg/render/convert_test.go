package render

import (
	"context"
	"testing"

	"github.com/matzehuels/dashlayout/pkg/errors"
)

func TestToPDFWithoutConverter(t *testing.T) {
	if HasConverter() {
		t.Skip("rsvg-convert installed")
	}
	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() = %v, want UNSUPPORTED", err)
	}
}

package errors

import (
	"math"
	"regexp"
	"unicode"
)

// nameRegex matches item and container names used in scene files and URLs.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName validates an item, container or element name.
//
// Names appear in scene files and HTTP paths, so the rules are conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - No control characters
//   - Letters, digits, '.', '_' and '-' only, starting with a letter or digit
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "%s name too long (max 64 characters)", kind)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind)
		}
	}

	if !nameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid %s name: %q", kind, name)
	}

	return nil
}

// ValidateLength validates a pixel length such as a snap radius or a
// container dimension. NaN, infinities and negative values are rejected.
func ValidateLength(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative (got %g)", field, v)
	}
	return nil
}

// ValidateCoordinate validates a coordinate or delta, which may be negative.
func ValidateCoordinate(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", field)
	}
	return nil
}

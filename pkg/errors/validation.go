package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateSize checks that a chart dimension is a finite, positive number.
func ValidateSize(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be finite", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateColumn checks a data column name used to bind series accessors.
//
// Rules:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateColumn(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidConfig, "column name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidConfig, "column name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "column name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an output or data file path.
// Paths may be absolute; they must not be empty or contain null bytes.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}
	return nil
}

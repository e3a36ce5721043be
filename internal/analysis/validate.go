package analysis

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	gixerrors "github.com/standardbeagle/gix/internal/errors"
)

// ValidatePattern is the only fallible entry point of the engine. It
// rejects empty and whitespace-only patterns and glob syntax that can
// never match (e.g. an unterminated character class). Analysis and
// optimization themselves stay total.
func ValidatePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return gixerrors.NewPatternError(pattern, "pattern cannot be empty")
	}

	base := strings.TrimPrefix(pattern, "!")
	if !doublestar.ValidatePattern(base) {
		return gixerrors.NewPatternError(pattern, "malformed glob syntax")
	}

	return nil
}

// IsValidPattern reports whether ValidatePattern accepts the pattern.
func IsValidPattern(pattern string) bool {
	return ValidatePattern(pattern) == nil
}

// ValidateAll checks every pattern and collects all failures into one
// error, so a report can name each bad pattern instead of stopping at
// the first.
func ValidateAll(patterns []string) error {
	errs := make([]error, 0, len(patterns))
	for _, p := range patterns {
		errs = append(errs, ValidatePattern(p))
	}
	if me := gixerrors.NewMultiError(errs); me != nil {
		return me
	}
	return nil
}

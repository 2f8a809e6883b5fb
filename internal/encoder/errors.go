package encoder

import (
	"errors"
	"fmt"
)

// ConstructionErrorCode categorizes table construction failures.
type ConstructionErrorCode string

const (
	// ErrCodeMissingBase indicates the coercion stage did not produce a
	// character that later stages spell words with.
	ErrCodeMissingBase ConstructionErrorCode = "MISSING_BASE"

	// ErrCodeUnresolvedWord indicates a stage tried to spell a word using a
	// character no earlier stage produced.
	ErrCodeUnresolvedWord ConstructionErrorCode = "UNRESOLVED_WORD"

	// ErrCodeFallbackUnresolved indicates the words used by the
	// String.fromCharCode fallback are not fully held by the table.
	ErrCodeFallbackUnresolved ConstructionErrorCode = "FALLBACK_UNRESOLVED"
)

// ConstructionError reports a staging defect found while building a Table.
type ConstructionError struct {
	Code    ConstructionErrorCode
	Stage   string
	Word    string // word being spelled, if any
	Missing rune
}

func (e *ConstructionError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("%s: stage %s: %q needs %q, which is not derived yet", e.Code, e.Stage, e.Word, e.Missing)
	}
	return fmt.Sprintf("%s: stage %s: %q is not derived", e.Code, e.Stage, e.Missing)
}

// IsConstructionError reports whether err is, or wraps, a *ConstructionError.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}

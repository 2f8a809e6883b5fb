package encoder

import (
	"fmt"
	"strings"
)

// Alphabet is the complete set of characters an encoded expression may contain.
const Alphabet = `()[]{}/+!-=\`

// InAlphabet reports whether r may appear in an encoded expression.
func InAlphabet(r rune) bool {
	return strings.ContainsRune(Alphabet, r)
}

// AlphabetError reports a character outside Alphabet found in an expression.
type AlphabetError struct {
	Rune   rune
	Offset int // byte offset into the expression
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("character %q (U+%04X) at offset %d is outside the restricted alphabet", e.Rune, e.Rune, e.Offset)
}

// Validate returns an *AlphabetError for the first character of expr that is
// not in Alphabet, or nil if expr is clean.
func Validate(expr string) error {
	for i, r := range expr {
		if !InAlphabet(r) {
			return &AlphabetError{Rune: r, Offset: i}
		}
	}
	return nil
}

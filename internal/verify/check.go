package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/punc/internal/encoder"
)

// Mismatch is a table entry that did not evaluate to its character.
type Mismatch struct {
	Char rune
	Got  string
	Err  error
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("%q: %v", m.Char, m.Err)
	}
	return fmt.Sprintf("%q: evaluated to %q", m.Char, m.Got)
}

// MismatchError collects every failing entry of a table check.
type MismatchError struct {
	Mismatches []Mismatch
}

func (e *MismatchError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return fmt.Sprintf("%d table entr(ies) wrong: %s", len(e.Mismatches), strings.Join(parts, "; "))
}

// CheckTable evaluates every entry of t and returns a *MismatchError
// listing the ones that do not produce their character.
func CheckTable(ctx context.Context, t *encoder.Table) error {
	var bad []Mismatch
	for _, e := range t.Entries() {
		got, err := EvalString(ctx, e.Expr)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			bad = append(bad, Mismatch{Char: e.Char, Err: err})
			continue
		}
		if got != string(e.Char) {
			bad = append(bad, Mismatch{Char: e.Char, Got: got})
		}
	}
	if len(bad) > 0 {
		return &MismatchError{Mismatches: bad}
	}
	return nil
}

// StringMismatchError reports an encoded string that evaluated to
// something else.
type StringMismatchError struct {
	Want string
	Got  string
}

func (e *StringMismatchError) Error() string {
	// Report the first differing rune; whole programs are too long to print.
	want, got := []rune(e.Want), []rune(e.Got)
	i := 0
	for i < len(want) && i < len(got) && want[i] == got[i] {
		i++
	}
	return fmt.Sprintf("encoded text differs at rune %d (want %d runes, got %d)", i, len(want), len(got))
}

// CheckString encodes s with t, evaluates the result and compares it to s.
func CheckString(ctx context.Context, t *encoder.Table, s string) error {
	got, err := EvalString(ctx, encoder.Encode(t, s))
	if err != nil {
		return err
	}
	if got != s {
		return &StringMismatchError{Want: s, Got: got}
	}
	return nil
}

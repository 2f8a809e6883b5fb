package encoder

import (
	"strings"
	"unicode/utf16"
)

// emptyString evaluates to "".
const emptyString = "([]+[])"

// Encode returns a restricted expression that evaluates to s.
//
// Characters held by t are emitted as their table expression. Any other
// character c becomes
//
//	([]+[])["constructor"]["fromCharCode"](Number(c))
//
// so its cost grows with its code point. Characters outside the Basic
// Multilingual Plane are emitted as a UTF-16 surrogate pair, two such terms.
// No upper bound is placed on code points.
func Encode(t *Table, s string) string {
	if s == "" {
		return emptyString
	}
	parts := make([]string, 0, len(s))
	for _, r := range s {
		if expr, ok := t.Lookup(r); ok {
			parts = append(parts, expr)
			continue
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			parts = append(parts, t.synthesize(hi), t.synthesize(lo))
			continue
		}
		parts = append(parts, t.synthesize(r))
	}
	return strings.Join(parts, "+")
}

// synthesize builds the character with UTF-16 code unit u at runtime.
func (t *Table) synthesize(u rune) string {
	return t.fallback + "(" + Number(int(u)) + ")"
}

// Stats counts how the runes of a text would be encoded.
type Stats struct {
	Runes       int // runes in the text
	Derived     int // runes taken from the table
	Synthesized int // runes built with String.fromCharCode
}

// Measure reports how Encode would treat each rune of s.
func Measure(t *Table, s string) Stats {
	var st Stats
	for _, r := range s {
		st.Runes++
		if _, ok := t.Lookup(r); ok {
			st.Derived++
		} else {
			st.Synthesized++
		}
	}
	return st
}

package encoder

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Strategy names how a table entry was derived.
type Strategy string

const (
	// StrategyCoercion indexes the string form of a primitive coercion,
	// e.g. ![]+[] is "false".
	StrategyCoercion Strategy = "coercion"

	// StrategyLookup indexes the string form of a value reached by a named
	// property, e.g. the source text of the String constructor.
	StrategyLookup Strategy = "lookup"

	// StrategyRadix renders a number in a base above ten, e.g. 13 in base
	// 14 is "d".
	StrategyRadix Strategy = "radix"

	// StrategyEscape indexes the output of escape() applied to a character.
	StrategyEscape Strategy = "escape"
)

// Entry is one character derivation.
type Entry struct {
	Char     rune
	Expr     string
	Strategy Strategy
	// Origin describes the runtime value that was indexed, e.g. "false"[0].
	Origin string
}

// Table maps characters to restricted expressions evaluating to them.
// A Table is only obtainable from Build and never changes afterwards.
type Table struct {
	entries *linkedhashmap.Map // rune -> Entry, in derivation order

	constructor string // encoded "constructor"
	fallback    string // ([]+[])["constructor"]["fromCharCode"]
}

// Lookup returns the expression for r, if r was derived.
func (t *Table) Lookup(r rune) (string, bool) {
	e, ok := t.Entry(r)
	if !ok {
		return "", false
	}
	return e.Expr, true
}

// Entry returns the full derivation for r.
func (t *Table) Entry(r rune) (Entry, bool) {
	v, ok := t.entries.Get(r)
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Len returns the number of derived characters.
func (t *Table) Len() int {
	return t.entries.Size()
}

// Entries returns all derivations in the order they were produced.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.entries.Size())
	it := t.entries.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Entry))
	}
	return out
}

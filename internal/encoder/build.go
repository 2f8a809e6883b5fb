package encoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Words the table spells while building, and that Encode relies on.
const (
	wordConstructor  = "constructor"
	wordFromCharCode = "fromCharCode"
	wordToString     = "toString"
	wordFill         = "fill"
	wordReturnEscape = "return escape"
)

// baseAlphabet is everything the coercion stage must produce. Every word
// spelled before the escape stage draws only from it plus stage 2 output.
const baseAlphabet = "NaobjecOflstruIiny "

// phrase is a restricted expression whose runtime string value is known.
type phrase struct {
	expr  string // restricted expression
	text  string // what expr evaluates to
	chars string // characters to take from text
}

// coercionPhrases come from primitives alone: no word lookups.
var coercionPhrases = []phrase{
	{expr: "+{}+[]", text: "NaN", chars: "Na"},
	{expr: "{}+[]", text: "[object Object]", chars: "objec O"},
	{expr: "![]+[]", text: "false", chars: "fls"},
	{expr: "!![]+[]", text: "true", chars: "tru"},
	{expr: "+!![]/+![]+[]", text: "Infinity", chars: "Iniy"},
}

// radixLetters are derived as (n).toString(n+1), the last digit of base n+1.
var radixLetters = []struct {
	char rune
	n    int
}{
	{'d', 13},
	{'h', 17},
	{'k', 20},
	{'m', 22},
	{'q', 26},
	{'v', 31},
	{'w', 32},
	{'z', 35},
}

// builder accumulates entries. Words may only be spelled from entries that
// are already present; it has no fallback path.
type builder struct {
	entries *linkedhashmap.Map
	stage   string
}

// Build derives the character table.
//
// Stages run in a fixed order and each one only spells words from the
// characters earlier stages produced:
//
//  1. coercion: NaN, [object Object], false, true, Infinity
//  2. lookup: the source text of the String and RegExp constructors
//  3. radix: letters as the last digit of a number in base n+1
//  4. escape: a backslash from a regex literal, then "C" from escape("\\")
//
// Build returns a *ConstructionError if a stage would need a character that
// is not derived yet. With the fixed phrase set this does not happen; the
// checks keep reordering mistakes from producing silently wrong output.
func Build() (*Table, error) {
	b := &builder{entries: linkedhashmap.New()}

	steps := []struct {
		name string
		run  func() error
	}{
		{"coercion", b.coercionStage},
		{"lookup", b.lookupStage},
		{"radix", b.radixStage},
		{"escape", b.escapeStage},
	}
	for _, s := range steps {
		b.stage = s.name
		if err := s.run(); err != nil {
			return nil, err
		}
	}

	b.stage = "fallback"
	ctor, err := b.spellFallback(wordConstructor)
	if err != nil {
		return nil, err
	}
	fromCharCode, err := b.spellFallback(wordFromCharCode)
	if err != nil {
		return nil, err
	}

	return &Table{
		entries:     b.entries,
		constructor: ctor,
		fallback:    "([]+[])[" + ctor + "][" + fromCharCode + "]",
	}, nil
}

// MustBuild is like Build but panics on error.
func MustBuild() *Table {
	t, err := Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (b *builder) coercionStage() error {
	for _, p := range coercionPhrases {
		if err := b.take(p, StrategyCoercion); err != nil {
			return err
		}
	}
	for _, r := range baseAlphabet {
		if _, ok := b.entries.Get(r); !ok {
			return &ConstructionError{Code: ErrCodeMissingBase, Stage: b.stage, Missing: r}
		}
	}
	return nil
}

func (b *builder) lookupStage() error {
	stringCtor, err := b.index("[]+[]", Prop(wordConstructor))
	if err != nil {
		return err
	}
	regexpCtor, err := b.index("/-/", Prop(wordConstructor))
	if err != nil {
		return err
	}
	phrases := []phrase{
		{expr: "[]+" + stringCtor, text: "function String() { [native code] }", chars: "Sg"},
		{expr: "[]+" + regexpCtor, text: "function RegExp() { [native code] }", chars: "REpx"},
	}
	for _, p := range phrases {
		if err := b.take(p, StrategyLookup); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) radixStage() error {
	toString, err := b.spell(wordToString)
	if err != nil {
		return err
	}
	for _, l := range radixLetters {
		b.put(Entry{
			Char:     l.char,
			Expr:     fmt.Sprintf("(%s)[%s](%s)", Number(l.n), toString, Number(l.n+1)),
			Strategy: StrategyRadix,
			Origin:   fmt.Sprintf("(%d).toString(%d)", l.n, l.n+1),
		})
	}
	return nil
}

func (b *builder) escapeStage() error {
	// The regex literal /\\/ stringifies to four characters; the second is
	// a lone backslash.
	if err := b.take(phrase{expr: `/\\/+[]`, text: `/\\/`, chars: `\`}, StrategyCoercion); err != nil {
		return err
	}

	fill, err := b.spell(wordFill)
	if err != nil {
		return err
	}
	ctor, err := b.spell(wordConstructor)
	if err != nil {
		return err
	}
	body, err := b.spell(wordReturnEscape)
	if err != nil {
		return err
	}
	backslash, err := b.spell(`\`)
	if err != nil {
		return err
	}

	// Function("return escape")() is the global escape; escape("\\") is "%5C".
	escape := fmt.Sprintf("([][%s])[%s](%s)()", fill, ctor, body)
	b.put(Entry{
		Char:     'C',
		Expr:     fmt.Sprintf("(%s(%s))[%s]", escape, backslash, Number(2)),
		Strategy: StrategyEscape,
		Origin:   `escape("\\")[2]`,
	})
	return nil
}

// take derives each of p.chars by its position in p.text.
func (b *builder) take(p phrase, s Strategy) error {
	for _, r := range p.chars {
		pos := strings.IndexRune(p.text, r)
		if pos < 0 {
			return fmt.Errorf("encoder: %q does not occur in %q", r, p.text)
		}
		expr, err := b.index(p.expr, At(pos))
		if err != nil {
			return err
		}
		b.put(Entry{
			Char:     r,
			Expr:     expr,
			Strategy: s,
			Origin:   fmt.Sprintf("%q[%d]", p.text, pos),
		})
	}
	return nil
}

// index subscripts the value of expr.
func (b *builder) index(expr string, i Index) (string, error) {
	if i.Kind == ByPosition {
		return fmt.Sprintf("(%s)[%s]", expr, Number(i.Position)), nil
	}
	word, err := b.spell(i.Name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s)[%s]", expr, word), nil
}

// spell encodes w using only entries derived so far.
func (b *builder) spell(w string) (string, error) {
	parts := make([]string, 0, len(w))
	for _, r := range w {
		v, ok := b.entries.Get(r)
		if !ok {
			return "", &ConstructionError{Code: ErrCodeUnresolvedWord, Stage: b.stage, Word: w, Missing: r}
		}
		parts = append(parts, v.(Entry).Expr)
	}
	return strings.Join(parts, "+"), nil
}

func (b *builder) spellFallback(w string) (string, error) {
	expr, err := b.spell(w)
	var ce *ConstructionError
	if errors.As(err, &ce) {
		ce.Code = ErrCodeFallbackUnresolved
	}
	return expr, err
}

// put records e. A character is derived once; later derivations are ignored.
func (b *builder) put(e Entry) {
	if _, ok := b.entries.Get(e.Char); ok {
		return
	}
	b.entries.Put(e.Char, e)
}

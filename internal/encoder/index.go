package encoder

// IndexKind distinguishes the two ways an expression can be subscripted.
type IndexKind int

const (
	// ByPosition subscripts with a numeric offset, e.g. ("false")[0].
	ByPosition IndexKind = iota
	// ByName subscripts with a property name, e.g. ("")["constructor"].
	ByName
)

// Index is a subscript applied to a runtime value.
type Index struct {
	Kind     IndexKind
	Position int
	Name     string
}

// At returns a positional index.
func At(pos int) Index {
	return Index{Kind: ByPosition, Position: pos}
}

// Prop returns a named index.
func Prop(name string) Index {
	return Index{Kind: ByName, Name: name}
}

package encoder

// Assemble wraps source in an expression that, when evaluated, runs it as
// the body of a new function:
//
//	([]["fill"])["constructor"](source)()
//
// The constructor of any function is Function, so this is
// Function(source)(). The value of the expression is whatever source
// returns.
func Assemble(t *Table, source string) string {
	return "([][" + Encode(t, wordFill) + "])[" + t.constructor + "](" + Encode(t, source) + ")()"
}

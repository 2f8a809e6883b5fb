package encoder

import "strings"

const (
	// Zero evaluates to 0: an empty array coerced to a number.
	Zero = "+[]"

	// One evaluates to 1: a negated empty array is false, negated again true,
	// then coerced to a number. The leading plus doubles as the addition
	// operator when ones are placed side by side.
	One = "+!![]"
)

// Number encodes n as a restricted expression that evaluates to n.
//
//	Number(0) // +[]
//	Number(2) // +!![]+!![]
//
// The output grows linearly with n. Number panics if n is negative.
func Number(n int) string {
	if n < 0 {
		panic("encoder: Number called with negative value")
	}
	if n == 0 {
		return Zero
	}
	return strings.Repeat(One, n)
}

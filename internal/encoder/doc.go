// Package encoder rewrites text as JavaScript expressions built only from the
// characters ( ) [ ] { } / + ! - = and backslash.
//
// The encoder relies on JavaScript's implicit coercions:
//
//	+[]          // 0
//	+!![]        // 1
//	![]+[]       // "false"
//	({}+[])[+[]] // "["
//
// Four pieces build on each other:
//
//   - Number encodes a non-negative integer as a sum of ones.
//   - Build derives a Table mapping characters to expressions, in stages,
//     each stage only using entries produced by earlier ones.
//   - Table.Encode encodes arbitrary text, falling back to
//     String.fromCharCode for characters the table does not hold.
//   - Assemble wraps a program so that evaluating the result runs it.
//
// Everything in this package is pure. A *Table is immutable once Build
// returns and may be shared between goroutines.
package encoder

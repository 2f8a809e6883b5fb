// Package harness runs conformance scenarios against the encoder.
//
// A scenario is a small program plus the observable effect it must have once
// it has been assembled into restricted-alphabet form and evaluated.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: sets_global
//	description: "Assignment to a global survives encoding"
//	source: |
//	  globalThis.answer = 6 * 7
//	expect:
//	  global: answer
//	  value: 42
//
// When expect.global is empty the value of the assembled expression itself
// (what the program returns) is compared instead. Values are compared by
// their JavaScript string form, so 42, "42" and 42.0 all match a result of 42.
//
// # Checks
//
// Every run checks that:
//   - the assembled output only uses the restricted alphabet
//   - the encoded source evaluates back to the source text
//   - the expected value is observed after running the program
//
// # Golden Files
//
// RunWithGolden additionally compares the assembled output against
// testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness

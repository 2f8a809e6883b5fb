package cli

// Error codes for CLI responses.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeScanError    = "E002" // Directory scan error
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeReadFailed   = "E006" // File read error
	ErrCodeWriteFailed  = "E007" // File write error
	ErrCodeVerifyFailed = "E008" // Output did not evaluate to the input
	ErrCodeConstruction = "E009" // Derivation table could not be built
	ErrCodeAlphabet     = "E010" // Output contains a character outside the alphabet
)

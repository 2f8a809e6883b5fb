package harness

// Scenario defines a conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Source is the program text to assemble.
	Source string `yaml:"source"`

	// Expect is the observable effect of running Source.
	Expect Expectation `yaml:"expect"`
}

// Expectation is a value that must be observable after the program runs.
type Expectation struct {
	// Global names a global variable to read. If empty, the value the
	// program returns is used.
	Global string `yaml:"global,omitempty"`

	// Value is the expected value, compared by string form.
	Value interface{} `yaml:"value"`
}

// Result is the outcome of running a scenario.
type Result struct {
	// Pass indicates every check succeeded.
	Pass bool `json:"pass"`

	// Output is the assembled expression.
	Output string `json:"-"`

	// OutputBytes is len(Output).
	OutputBytes int `json:"output_bytes"`

	// Observed is the string form of the value that was compared.
	Observed string `json:"observed,omitempty"`

	// Errors contains failed check messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{Pass: true}
}

// AddError records a failed check.
func (r *Result) AddError(msg string) {
	r.Pass = false
	r.Errors = append(r.Errors, msg)
}

package harness

// Outcome is what a check actually produced.
type Outcome struct {
	// Value is the rendered result. Empty when a checked result is absent.
	Value string `json:"value,omitempty"`

	// Present is false only for an absent checked result.
	Present bool `json:"present"`

	// Overflow is true if the exact result was not representable.
	// For floats: a finite computation produced an infinity.
	Overflow bool `json:"overflow"`

	// Infinite is true for an infinite float result.
	Infinite bool `json:"infinite"`
}

// CheckResult is the outcome of one check and any expectation mismatches.
type CheckResult struct {
	Index   int      `json:"index"`
	Op      string   `json:"op"`
	Type    string   `json:"type"`
	Outcome Outcome  `json:"outcome"`
	Pass    bool     `json:"pass"`
	Errors  []string `json:"errors,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Name is the scenario name.
	Name string `json:"name"`

	// Pass is true if every check matched its expectations.
	Pass bool `json:"pass"`

	// Checks holds one entry per scenario check, in order.
	Checks []CheckResult `json:"checks"`

	// Errors collects every mismatch across all checks.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(name string) *Result {
	return &Result{
		Name:   name,
		Pass:   true,
		Checks: []CheckResult{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddCheck records a check result, folding its errors into the scenario result.
func (r *Result) AddCheck(c CheckResult) {
	r.Checks = append(r.Checks, c)
	for _, e := range c.Errors {
		r.AddError(e)
	}
}

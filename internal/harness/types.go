package harness

// TraceEvent records one mutation and its observed outcome.
type TraceEvent struct {
	// Op is the mutation performed: "insert", "remove", or "take".
	Op string `json:"op"`

	// Axiom is the scenario-local alias of the axiom mutated.
	Axiom string `json:"axiom"`

	// Changed is the composite's reported change flag for this step.
	Changed bool `json:"changed"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: every expect clause and every
	// assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per flow step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Counts holds the final per-slot axiom counts, in slot order.
	// Null slots report zero.
	Counts []int `json:"counts"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		Counts: []int{},
	}
}

// AddError records a validation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends one mutation event to the trace.
func (r *Result) AddTrace(op, axiom string, changed bool) {
	r.Trace = append(r.Trace, TraceEvent{Op: op, Axiom: axiom, Changed: changed})
}

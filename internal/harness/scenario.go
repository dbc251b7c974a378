package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios build a composite from a slot list, run a flow of mutations
// against it, and assert on the per-step change flags and the final
// per-slot state.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// OntologyIRI optionally names the composite's ontology IRI.
	// If empty, the composite stays anonymous.
	OntologyIRI string `yaml:"ontology_iri,omitempty"`

	// Slots lists the index kind for each slot, outermost first.
	// One to four slots; each is "set", "kind", or "null".
	Slots []string `yaml:"slots"`

	// Axioms maps scenario-local aliases to axiom definitions.
	// Flow steps and assertions refer to axioms by alias.
	Axioms map[string]AxiomSpec `yaml:"axioms"`

	// Flow contains the mutations to run, in order.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final per-slot state.
	// Supported types: count, contains, slots_equal
	Assertions []Assertion `yaml:"assertions"`
}

// AxiomSpec defines one axiom. Exactly one of two forms applies:
// a declaration (Type plus IRI, resolved through the entity vocabulary)
// or a subclass statement (Sub plus Super, both named classes).
type AxiomSpec struct {
	// Type is the entity type IRI for a declaration
	// (e.g., "http://www.w3.org/2002/07/owl#Class").
	Type string `yaml:"type,omitempty"`

	// IRI is the declared entity's IRI.
	IRI string `yaml:"iri,omitempty"`

	// Sub is the subclass IRI of a subclass statement.
	Sub string `yaml:"sub,omitempty"`

	// Super is the superclass IRI of a subclass statement.
	Super string `yaml:"super,omitempty"`

	// Annotations lists annotations carried by the axiom.
	Annotations []AnnotationSpec `yaml:"annotations,omitempty"`
}

// AnnotationSpec defines one annotation as a property IRI and a plain
// string literal value.
type AnnotationSpec struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

// FlowStep represents one mutation in the flow.
type FlowStep struct {
	// Op is the mutation to perform: "insert", "remove", or "take".
	Op string `yaml:"op"`

	// Axiom is the alias of the axiom to mutate.
	Axiom string `yaml:"axiom"`

	// Expect is the expected change flag. If nil, the flag is traced
	// but not validated.
	Expect *bool `yaml:"expect,omitempty"`
}

// Assertion validates final per-slot state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "count": a slot tracks exactly Count axioms
	// - "contains": a set slot does (or does not) track an axiom
	// - "slots_equal": all set slots track pairwise-equal content
	Type string `yaml:"type"`

	// Slot is the zero-based slot position (used by count, contains).
	Slot int `yaml:"slot,omitempty"`

	// Count is the expected axiom count (used by count).
	Count int `yaml:"count,omitempty"`

	// Axiom is the alias of the axiom to look for (used by contains).
	Axiom string `yaml:"axiom,omitempty"`

	// Present is whether the axiom should be tracked (used by contains).
	// Defaults to true.
	Present *bool `yaml:"present,omitempty"`
}

// Mutation op constants.
const (
	OpInsert = "insert"
	OpRemove = "remove"
	OpTake   = "take"
)

// Slot kind constants.
const (
	SlotSet  = "set"
	SlotKind = "kind"
	SlotNull = "null"
)

// Assertion type constants.
const (
	AssertCount      = "count"
	AssertContains   = "contains"
	AssertSlotsEqual = "slots_equal"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Slots) < 1 || len(s.Slots) > 4 {
		return fmt.Errorf("slots must list between 1 and 4 slot kinds, got %d", len(s.Slots))
	}
	for i, kind := range s.Slots {
		switch kind {
		case SlotSet, SlotKind, SlotNull:
		default:
			return fmt.Errorf("slots[%d]: unknown slot kind %q", i, kind)
		}
	}

	if len(s.Axioms) == 0 {
		return fmt.Errorf("axioms map is required and must be non-empty")
	}
	for alias, spec := range s.Axioms {
		if err := validateAxiomSpec(alias, &spec); err != nil {
			return err
		}
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}
	for i, step := range s.Flow {
		switch step.Op {
		case OpInsert, OpRemove, OpTake:
		case "":
			return fmt.Errorf("flow[%d]: op is required", i)
		default:
			return fmt.Errorf("flow[%d]: unknown op %q", i, step.Op)
		}
		if step.Axiom == "" {
			return fmt.Errorf("flow[%d]: axiom is required", i)
		}
		if _, ok := s.Axioms[step.Axiom]; !ok {
			return fmt.Errorf("flow[%d]: unknown axiom alias %q", i, step.Axiom)
		}
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, s); err != nil {
			return err
		}
	}

	return nil
}

// validateAxiomSpec checks that an axiom definition uses exactly one form.
func validateAxiomSpec(alias string, a *AxiomSpec) error {
	declaration := a.Type != "" || a.IRI != ""
	subclass := a.Sub != "" || a.Super != ""

	switch {
	case declaration && subclass:
		return fmt.Errorf("axioms[%s]: type/iri and sub/super are mutually exclusive", alias)
	case declaration:
		if a.Type == "" || a.IRI == "" {
			return fmt.Errorf("axioms[%s]: declarations need both type and iri", alias)
		}
	case subclass:
		if a.Sub == "" || a.Super == "" {
			return fmt.Errorf("axioms[%s]: subclass statements need both sub and super", alias)
		}
	default:
		return fmt.Errorf("axioms[%s]: either type/iri or sub/super is required", alias)
	}

	for i, ann := range a.Annotations {
		if ann.Property == "" {
			return fmt.Errorf("axioms[%s].annotations[%d]: property is required", alias, i)
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, s *Scenario) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertCount:
		if a.Slot < 0 || a.Slot >= len(s.Slots) {
			return fmt.Errorf("assertions[%d]: slot %d out of range for %d slots", index, a.Slot, len(s.Slots))
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertContains:
		if a.Slot < 0 || a.Slot >= len(s.Slots) {
			return fmt.Errorf("assertions[%d]: slot %d out of range for %d slots", index, a.Slot, len(s.Slots))
		}
		if s.Slots[a.Slot] != SlotSet {
			return fmt.Errorf("assertions[%d]: contains needs a set slot, slot %d is %q", index, a.Slot, s.Slots[a.Slot])
		}
		if a.Axiom == "" {
			return fmt.Errorf("assertions[%d]: axiom is required for contains", index)
		}
		if _, ok := s.Axioms[a.Axiom]; !ok {
			return fmt.Errorf("assertions[%d]: unknown axiom alias %q", index, a.Axiom)
		}
	case AssertSlotsEqual:
		// Applies to whichever set slots exist; nothing further to check.
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

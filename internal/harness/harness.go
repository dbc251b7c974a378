package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/owlet/model"
	"github.com/roach88/owlet/ontology"
	"github.com/roach88/owlet/vocab"
)

// slotIndex is the index type every harness slot holds. Using the index
// interface itself as the type argument lets one composite mix set, kind,
// and null slots chosen at runtime.
type slotIndex = ontology.Index[ontology.RcAxiom]

// composite is the combined surface the harness drives.
type composite interface {
	ontology.Ontology
	ontology.MutableOntology
}

// Harness executes one scenario against a freshly assembled composite.
type Harness struct {
	ont    composite
	slots  []slotIndex
	axioms map[string]*model.AnnotatedAxiom
	logger *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs against a fresh composite for isolation. The trace
// depends only on the scenario, so repeated runs are byte-identical.
//
// Execution flow:
// 1. Assemble a composite from the slot list
// 2. Build the aliased axioms through one shared construction context
// 3. Execute flow steps with expect validation
// 4. Capture final per-slot counts
// 5. Evaluate assertions against the final state
func Run(scenario *Scenario) (*Result, error) {
	build := model.NewBuild()

	ont, slots, err := assemble(scenario, build)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble composite: %w", err)
	}

	axioms, err := buildAxioms(scenario, build)
	if err != nil {
		return nil, fmt.Errorf("failed to build axioms: %w", err)
	}

	h := &Harness{
		ont:    ont,
		slots:  slots,
		axioms: axioms,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}

	result := NewResult()
	h.executeFlow(scenario.Flow, result)

	for i, slot := range h.slots {
		n, ok := slotLen(slot)
		if !ok {
			result.AddError(fmt.Sprintf("slot %d does not support counting", i))
		}
		result.Counts = append(result.Counts, n)
	}

	checkAssertions(result, scenario, h.slots, h.axioms)

	return result, nil
}

// assemble builds the composite named by the scenario's slot list.
//
// All four arities instantiate with slotIndex in every index position, so
// the arity is the only thing the switch varies.
func assemble(scenario *Scenario, build *model.Build) (composite, []slotIndex, error) {
	slots := make([]slotIndex, len(scenario.Slots))
	for i, kind := range scenario.Slots {
		switch kind {
		case SlotSet:
			slots[i] = ontology.NewSetIndex[ontology.RcAxiom]()
		case SlotKind:
			slots[i] = ontology.NewKindIndex[ontology.RcAxiom]()
		case SlotNull:
			slots[i] = ontology.NullIndex[ontology.RcAxiom]{}
		default:
			return nil, nil, fmt.Errorf("unknown slot kind %q", kind)
		}
	}

	var id model.OntologyID
	if scenario.OntologyIRI != "" {
		id.IRI = build.IRI(scenario.OntologyIRI)
	}

	var ont composite
	switch len(slots) {
	case 1:
		o := ontology.NewOneIndexedOntology[ontology.RcAxiom, slotIndex](slots[0])
		o.SetID(id)
		ont = o
	case 2:
		ont = ontology.NewTwoIndexedOntology[ontology.RcAxiom, slotIndex, slotIndex](
			slots[0], slots[1], id)
	case 3:
		ont = ontology.NewThreeIndexedOntology[ontology.RcAxiom, slotIndex, slotIndex, slotIndex](
			slots[0], slots[1], slots[2], id)
	case 4:
		ont = ontology.NewFourIndexedOntology[ontology.RcAxiom, slotIndex, slotIndex, slotIndex, slotIndex](
			slots[0], slots[1], slots[2], slots[3], id)
	default:
		return nil, nil, fmt.Errorf("unsupported slot count %d", len(slots))
	}

	return ont, slots, nil
}

// buildAxioms constructs every aliased axiom through one shared Build, so
// aliases naming the same IRIs produce identical axioms.
func buildAxioms(scenario *Scenario, build *model.Build) (map[string]*model.AnnotatedAxiom, error) {
	axioms := make(map[string]*model.AnnotatedAxiom, len(scenario.Axioms))
	for alias, spec := range scenario.Axioms {
		var core model.Axiom
		if spec.Sub != "" {
			core = model.SubClassOf{
				Sub:   build.Class(spec.Sub),
				Super: build.Class(spec.Super),
			}
		} else {
			entity, err := vocab.EntityForIRI(spec.Type, spec.IRI, build)
			if err != nil {
				return nil, fmt.Errorf("axioms[%s]: %w", alias, err)
			}
			core = entity.Declaration()
		}

		anns := make([]model.Annotation, 0, len(spec.Annotations))
		for _, a := range spec.Annotations {
			anns = append(anns, model.Annotation{
				Property: build.AnnotationProperty(a.Property),
				Value:    model.LiteralValue{Literal: model.Literal{Value: a.Value}},
			})
		}

		ax := model.NewAnnotatedAxiom(core, anns...)
		axioms[alias] = &ax
	}
	return axioms, nil
}

// executeFlow runs all flow steps and validates expect clauses.
//
// Each step mutates the composite, records the reported change flag in
// the trace, and fails the result if the flag disagrees with the step's
// expect clause.
func (h *Harness) executeFlow(flow []FlowStep, result *Result) {
	for i, step := range flow {
		ax := h.axioms[step.Axiom]

		var changed bool
		switch step.Op {
		case OpInsert:
			changed = h.ont.Insert(ax)
		case OpRemove:
			changed = h.ont.Remove(ax)
		case OpTake:
			taken := h.ont.Take(ax)
			changed = taken != nil
			if taken != nil && !taken.Equal(ax) {
				result.AddError(fmt.Sprintf(
					"flow[%d]: take %s returned a different axiom than requested", i, step.Axiom))
			}
		}

		result.AddTrace(step.Op, step.Axiom, changed)

		if step.Expect != nil && changed != *step.Expect {
			result.AddError(fmt.Sprintf(
				"flow[%d]: %s %s reported changed=%v, want %v",
				i, step.Op, step.Axiom, changed, *step.Expect))
		}

		h.logger.Info("flow step completed",
			"step", i,
			"op", step.Op,
			"axiom", step.Axiom,
			"changed", changed,
		)
	}
}

package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlet/model"
	"github.com/roach88/owlet/ontology"
)

// opaqueIndex satisfies the index contract but exposes no count surface.
type opaqueIndex struct{}

func (opaqueIndex) IndexInsert(ontology.RcAxiom) bool { return false }

func (opaqueIndex) IndexRemove(*model.AnnotatedAxiom) bool { return false }

func TestSlotLenUnknownIndexKind(t *testing.T) {
	_, ok := slotLen(opaqueIndex{})
	assert.False(t, ok)
}

func TestCountAssertionOnUncountableSlot(t *testing.T) {
	scenario := &Scenario{
		Name:        "uncountable_slot",
		Description: "Count assertions surface slots with no count surface",
		Slots:       []string{SlotSet},
		Axioms:      map[string]AxiomSpec{"A": classSpec("http://www.example.com/c")},
		Flow: []FlowStep{
			{Op: OpInsert, Axiom: "A"},
		},
		Assertions: []Assertion{
			{Type: AssertCount, Slot: 0, Count: 0},
		},
	}

	axioms, err := buildAxioms(scenario, model.NewBuild())
	require.NoError(t, err)

	result := NewResult()
	checkAssertions(result, scenario, []slotIndex{opaqueIndex{}}, axioms)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "does not support counting")
}

func TestSlotLen(t *testing.T) {
	set := ontology.NewSetIndex[ontology.RcAxiom]()
	kind := ontology.NewKindIndex[ontology.RcAxiom]()
	null := ontology.NullIndex[ontology.RcAxiom]{}

	n, ok := slotLen(set)
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	n, ok = slotLen(kind)
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	n, ok = slotLen(null)
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestSlotsEqualReportsDivergence(t *testing.T) {
	scenario := &Scenario{
		Name:        "diverged_slots",
		Description: "Two set slots diverge after a direct slot mutation",
		Slots:       []string{SlotSet, SlotSet},
		Axioms:      map[string]AxiomSpec{"A": classSpec("http://www.example.com/c")},
		Flow: []FlowStep{
			{Op: OpInsert, Axiom: "A"},
		},
		Assertions: []Assertion{
			{Type: AssertSlotsEqual},
		},
	}

	axioms, err := buildAxioms(scenario, model.NewBuild())
	require.NoError(t, err)

	first := ontology.NewSetIndex[ontology.RcAxiom]()
	second := ontology.NewSetIndex[ontology.RcAxiom]()
	first.IndexInsert(ontology.NewRcAxiom(axioms["A"]))

	result := NewResult()
	checkAssertions(result, scenario, []slotIndex{first, second}, axioms)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "track different content")
}

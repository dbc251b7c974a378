package harness

import (
	"fmt"

	"github.com/roach88/owlet/model"
	"github.com/roach88/owlet/ontology"
)

// slotLen reports the number of axioms a slot tracks. The second return
// is false for index kinds the harness doesn't know how to count.
func slotLen(slot slotIndex) (int, bool) {
	switch idx := slot.(type) {
	case *ontology.SetIndex[ontology.RcAxiom]:
		return idx.Len(), true
	case *ontology.KindIndex[ontology.RcAxiom]:
		return idx.Len(), true
	case ontology.NullIndex[ontology.RcAxiom]:
		return 0, true
	default:
		return 0, false
	}
}

// checkAssertions evaluates every assertion against the final slot state,
// recording each failure on the result.
func checkAssertions(result *Result, scenario *Scenario, slots []slotIndex, axioms map[string]*model.AnnotatedAxiom) {
	for i, assertion := range scenario.Assertions {
		switch assertion.Type {
		case AssertCount:
			assertCount(result, i, assertion, slots)
		case AssertContains:
			assertContains(result, i, assertion, slots, axioms)
		case AssertSlotsEqual:
			assertSlotsEqual(result, i, slots)
		}
	}
}

// assertCount checks that a slot tracks exactly the expected number of
// axioms.
func assertCount(result *Result, index int, a Assertion, slots []slotIndex) {
	n, ok := slotLen(slots[a.Slot])
	if !ok {
		result.AddError(fmt.Sprintf(
			"assertions[%d]: slot %d does not support counting", index, a.Slot))
		return
	}
	if n != a.Count {
		result.AddError(fmt.Sprintf(
			"assertions[%d]: slot %d tracks %d axioms, want %d", index, a.Slot, n, a.Count))
	}
}

// assertContains checks whether a set slot tracks the aliased axiom.
// Present defaults to true; set it to false to assert absence.
func assertContains(result *Result, index int, a Assertion, slots []slotIndex, axioms map[string]*model.AnnotatedAxiom) {
	set, ok := slots[a.Slot].(*ontology.SetIndex[ontology.RcAxiom])
	if !ok {
		result.AddError(fmt.Sprintf(
			"assertions[%d]: slot %d is not a set slot", index, a.Slot))
		return
	}

	want := true
	if a.Present != nil {
		want = *a.Present
	}

	if got := set.Contains(axioms[a.Axiom]); got != want {
		result.AddError(fmt.Sprintf(
			"assertions[%d]: slot %d contains %s = %v, want %v", index, a.Slot, a.Axiom, got, want))
	}
}

// assertSlotsEqual checks that every set slot tracks the same logical
// content. Non-set slots are skipped; fewer than two set slots passes
// vacuously.
func assertSlotsEqual(result *Result, index int, slots []slotIndex) {
	var sets []*ontology.SetIndex[ontology.RcAxiom]
	var positions []int
	for i, slot := range slots {
		if set, ok := slot.(*ontology.SetIndex[ontology.RcAxiom]); ok {
			sets = append(sets, set)
			positions = append(positions, i)
		}
	}

	for i := 1; i < len(sets); i++ {
		if !sets[0].Equal(sets[i]) {
			result.AddError(fmt.Sprintf(
				"assertions[%d]: set slots %d and %d track different content",
				index, positions[0], positions[i]))
		}
	}
}

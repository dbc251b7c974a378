package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlet/internal/testutil"
)

// Index contract conformance.
var (
	_ Index[RcAxiom]  = NullIndex[RcAxiom]{}
	_ Index[ArcAxiom] = NullIndex[ArcAxiom]{}
	_ Index[RcAxiom]  = (*SetIndex[RcAxiom])(nil)
	_ Index[RcAxiom]  = (*KindIndex[RcAxiom])(nil)
)

func TestNullIndexTracksNothing(t *testing.T) {
	a, _, _ := testutil.SampleAxioms()
	var idx NullIndex[RcAxiom]

	assert.False(t, idx.IndexInsert(NewRcAxiom(&a)))
	assert.False(t, idx.IndexInsert(NewRcAxiom(&a)))
	assert.False(t, idx.IndexRemove(&a))
}

func TestTakeReturnsCopyOnRemoval(t *testing.T) {
	a, _, _ := testutil.SampleAxioms()
	idx := NewSetIndex[RcAxiom]()
	idx.IndexInsert(NewRcAxiom(&a))

	taken := Take[RcAxiom](idx, &a)
	require.NotNil(t, taken)
	assert.True(t, taken.Equal(&a))
	assert.NotSame(t, &a, taken)
	assert.Equal(t, 0, idx.Len())
}

func TestTakeMissReturnsNil(t *testing.T) {
	a, _, _ := testutil.SampleAxioms()
	idx := NewSetIndex[RcAxiom]()

	assert.Nil(t, Take[RcAxiom](idx, &a))
}

func TestTakeFromNullIndex(t *testing.T) {
	a, _, _ := testutil.SampleAxioms()

	assert.Nil(t, Take[RcAxiom](NullIndex[RcAxiom]{}, &a))
}

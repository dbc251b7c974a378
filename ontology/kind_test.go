package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlet/internal/testutil"
	"github.com/roach88/owlet/model"
)

func TestKindIndexInsertIdempotent(t *testing.T) {
	a, _, _ := testutil.SampleAxioms()
	idx := NewKindIndex[RcAxiom]()

	assert.True(t, idx.IndexInsert(NewRcAxiom(&a)))
	assert.False(t, idx.IndexInsert(NewRcAxiom(&a)))
	assert.Equal(t, 1, idx.Len())
}

func TestKindIndexGroupsByKind(t *testing.T) {
	a, b, c := testutil.SampleAxioms()
	idx := NewKindIndex[RcAxiom]()
	idx.IndexInsert(NewRcAxiom(&a))
	idx.IndexInsert(NewRcAxiom(&b))
	idx.IndexInsert(NewRcAxiom(&c))

	assert.Equal(t, 3, idx.Len())
	assert.Len(t, idx.OfKind(model.KindDeclareClass), 1)
	assert.Len(t, idx.OfKind(model.KindDeclareObjectProperty), 1)
	assert.Len(t, idx.OfKind(model.KindDeclareDataProperty), 1)
	assert.Empty(t, idx.OfKind(model.KindSubClassOf))

	assert.Equal(t, []model.AxiomKind{
		model.KindDeclareClass,
		model.KindDeclareDataProperty,
		model.KindDeclareObjectProperty,
	}, idx.Kinds())
}

func TestKindIndexRemoveDropsEmptyBuckets(t *testing.T) {
	a, _, _ := testutil.SampleAxioms()
	idx := NewKindIndex[RcAxiom]()
	idx.IndexInsert(NewRcAxiom(&a))

	require.True(t, idx.IndexRemove(&a))
	assert.False(t, idx.IndexRemove(&a))
	assert.Empty(t, idx.Kinds())
	assert.Equal(t, 0, idx.Len())
}

func TestKindIndexOfKindCanonicalOrder(t *testing.T) {
	b := model.NewBuild()
	first := b.Class("http://www.example.com/a").Annotated()
	second := b.Class("http://www.example.com/b").Annotated()

	idx := NewKindIndex[RcAxiom]()
	idx.IndexInsert(NewRcAxiom(&second))
	idx.IndexInsert(NewRcAxiom(&first))

	axioms := idx.OfKind(model.KindDeclareClass)
	require.Len(t, axioms, 2)
	assert.Negative(t, axioms[0].Compare(axioms[1]))
}

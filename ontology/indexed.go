package ontology

import "github.com/roach88/owlet/model"

// Ontology is the identity surface every composite exposes: the ontology
// identifier plus the optional source-document IRI.
type Ontology interface {
	ID() model.OntologyID
	SetID(model.OntologyID)
	DocIRI() (model.IRI, bool)
	SetDocIRI(model.IRI)
	ClearDocIRI()
}

// MutableOntology is the mutation surface every composite exposes.
type MutableOntology interface {
	// Insert incorporates an axiom-like value. Reports true iff the axiom
	// was new to at least one tracking index.
	Insert(model.AsAnnotated) bool

	// Remove untracks the axiom. Reports true iff it was removed from at
	// least one tracking index.
	Remove(*model.AnnotatedAxiom) bool

	// Take removes the axiom and returns a copy of the supplied value if
	// anything was removed, nil otherwise.
	Take(*model.AnnotatedAxiom) *model.AnnotatedAxiom
}

// identity holds the ontology identifier and optional document IRI once
// per composite. Nested composites carry their own identity fields, but
// those are unused placeholders: accessors always resolve against the
// outermost composite.
type identity struct {
	id     model.OntologyID
	docIRI model.IRI
	hasDoc bool
}

func (n *identity) ID() model.OntologyID { return n.id }

func (n *identity) SetID(id model.OntologyID) { n.id = id }

func (n *identity) DocIRI() (model.IRI, bool) { return n.docIRI, n.hasDoc }

func (n *identity) SetDocIRI(iri model.IRI) { n.docIRI, n.hasDoc = iri, true }

func (n *identity) ClearDocIRI() {
	n.docIRI = model.IRI{}
	n.hasDoc = false
}

// OneIndexedOntology adapts a single index into an ontology.
type OneIndexedOntology[AA ForIndex[AA], I Index[AA]] struct {
	idx I
	identity
}

// NewOneIndexedOntology builds a single-index ontology with an anonymous
// identity.
func NewOneIndexedOntology[AA ForIndex[AA], I Index[AA]](i I) *OneIndexedOntology[AA, I] {
	return &OneIndexedOntology[AA, I]{idx: i}
}

// NewOneIndexedLocal is NewOneIndexedOntology for thread-confined handles.
func NewOneIndexedLocal[I Index[RcAxiom]](i I) *OneIndexedOntology[RcAxiom, I] {
	return NewOneIndexedOntology[RcAxiom, I](i)
}

// NewOneIndexedShared is NewOneIndexedOntology for handles shared across
// goroutines under external synchronization.
func NewOneIndexedShared[I Index[ArcAxiom]](i I) *OneIndexedOntology[ArcAxiom, I] {
	return NewOneIndexedOntology[ArcAxiom, I](i)
}

// First returns the index in slot 1.
func (o *OneIndexedOntology[AA, I]) First() I { return o.idx }

// Decompose consumes the composite, yielding its index for downstream use.
func (o *OneIndexedOntology[AA, I]) Decompose() I { return o.idx }

func (o *OneIndexedOntology[AA, I]) Insert(ax model.AsAnnotated) bool {
	a := ax.Annotated()
	var zero AA
	return o.idx.IndexInsert(zero.FromAxiom(&a))
}

func (o *OneIndexedOntology[AA, I]) Remove(ax *model.AnnotatedAxiom) bool {
	return o.idx.IndexRemove(ax)
}

func (o *OneIndexedOntology[AA, I]) Take(ax *model.AnnotatedAxiom) *model.AnnotatedAxiom {
	return Take[AA](o.idx, ax)
}

// TwoIndexedOntology composes two indexes. It is itself an Index, which
// is how the higher arities nest.
type TwoIndexedOntology[AA ForIndex[AA], I, J Index[AA]] struct {
	first  I
	second J
	identity
}

// NewTwoIndexedOntology builds a two-index ontology.
func NewTwoIndexedOntology[AA ForIndex[AA], I, J Index[AA]](i I, j J, id model.OntologyID) *TwoIndexedOntology[AA, I, J] {
	o := &TwoIndexedOntology[AA, I, J]{first: i, second: j}
	o.id = id
	return o
}

// First returns the index in slot 1.
func (o *TwoIndexedOntology[AA, I, J]) First() I { return o.first }

// Second returns the index in slot 2.
func (o *TwoIndexedOntology[AA, I, J]) Second() J { return o.second }

// Decompose consumes the composite, yielding both indexes in slot order.
func (o *TwoIndexedOntology[AA, I, J]) Decompose() (I, J) { return o.first, o.second }

func (o *TwoIndexedOntology[AA, I, J]) Insert(ax model.AsAnnotated) bool {
	a := ax.Annotated()
	var zero AA
	return o.IndexInsert(zero.FromAxiom(&a))
}

func (o *TwoIndexedOntology[AA, I, J]) Remove(ax *model.AnnotatedAxiom) bool {
	return o.IndexRemove(ax)
}

func (o *TwoIndexedOntology[AA, I, J]) Take(ax *model.AnnotatedAxiom) *model.AnnotatedAxiom {
	return Take[AA](o, ax)
}

// IndexInsert hands the same logical handle to both slots. Every slot is
// always invoked: one slot reporting "already present" says nothing about
// what its sibling has seen.
func (o *TwoIndexedOntology[AA, I, J]) IndexInsert(h AA) bool {
	changed := o.first.IndexInsert(h.Clone())
	// Don't short circuit
	return o.second.IndexInsert(h) || changed
}

func (o *TwoIndexedOntology[AA, I, J]) IndexRemove(ax *model.AnnotatedAxiom) bool {
	changed := o.first.IndexRemove(ax)
	// Don't short circuit
	return o.second.IndexRemove(ax) || changed
}

// ThreeIndexedOntology composes three indexes as (I, (J, K)).
type ThreeIndexedOntology[AA ForIndex[AA], I, J, K Index[AA]] struct {
	inner TwoIndexedOntology[AA, I, *TwoIndexedOntology[AA, J, K]]
}

// NewThreeIndexedOntology builds a three-index ontology.
func NewThreeIndexedOntology[AA ForIndex[AA], I, J, K Index[AA]](i I, j J, k K, id model.OntologyID) *ThreeIndexedOntology[AA, I, J, K] {
	o := &ThreeIndexedOntology[AA, I, J, K]{}
	o.inner.first = i
	o.inner.second = &TwoIndexedOntology[AA, J, K]{first: j, second: k}
	o.inner.id = id
	return o
}

// First returns the index in slot 1.
func (o *ThreeIndexedOntology[AA, I, J, K]) First() I { return o.inner.first }

// Second returns the index in slot 2.
func (o *ThreeIndexedOntology[AA, I, J, K]) Second() J { return o.inner.second.first }

// Third returns the index in slot 3.
func (o *ThreeIndexedOntology[AA, I, J, K]) Third() K { return o.inner.second.second }

// Decompose consumes the composite, yielding its indexes in slot order.
func (o *ThreeIndexedOntology[AA, I, J, K]) Decompose() (I, J, K) {
	i, jk := o.inner.Decompose()
	j, k := jk.Decompose()
	return i, j, k
}

func (o *ThreeIndexedOntology[AA, I, J, K]) ID() model.OntologyID { return o.inner.ID() }

func (o *ThreeIndexedOntology[AA, I, J, K]) SetID(id model.OntologyID) { o.inner.SetID(id) }

func (o *ThreeIndexedOntology[AA, I, J, K]) DocIRI() (model.IRI, bool) { return o.inner.DocIRI() }

func (o *ThreeIndexedOntology[AA, I, J, K]) SetDocIRI(iri model.IRI) { o.inner.SetDocIRI(iri) }

func (o *ThreeIndexedOntology[AA, I, J, K]) ClearDocIRI() { o.inner.ClearDocIRI() }

func (o *ThreeIndexedOntology[AA, I, J, K]) Insert(ax model.AsAnnotated) bool {
	return o.inner.Insert(ax)
}

func (o *ThreeIndexedOntology[AA, I, J, K]) Remove(ax *model.AnnotatedAxiom) bool {
	return o.inner.Remove(ax)
}

func (o *ThreeIndexedOntology[AA, I, J, K]) Take(ax *model.AnnotatedAxiom) *model.AnnotatedAxiom {
	return o.inner.Take(ax)
}

func (o *ThreeIndexedOntology[AA, I, J, K]) IndexInsert(h AA) bool {
	return o.inner.IndexInsert(h)
}

func (o *ThreeIndexedOntology[AA, I, J, K]) IndexRemove(ax *model.AnnotatedAxiom) bool {
	return o.inner.IndexRemove(ax)
}

// FourIndexedOntology composes four indexes as (I, (J, (K, L))).
type FourIndexedOntology[AA ForIndex[AA], I, J, K, L Index[AA]] struct {
	inner TwoIndexedOntology[AA, I, *ThreeIndexedOntology[AA, J, K, L]]
}

// NewFourIndexedOntology builds a four-index ontology.
func NewFourIndexedOntology[AA ForIndex[AA], I, J, K, L Index[AA]](i I, j J, k K, l L, id model.OntologyID) *FourIndexedOntology[AA, I, J, K, L] {
	o := &FourIndexedOntology[AA, I, J, K, L]{}
	o.inner.first = i
	o.inner.second = NewThreeIndexedOntology[AA, J, K, L](j, k, l, model.OntologyID{})
	o.inner.id = id
	return o
}

// First returns the index in slot 1.
func (o *FourIndexedOntology[AA, I, J, K, L]) First() I { return o.inner.first }

// Second returns the index in slot 2.
func (o *FourIndexedOntology[AA, I, J, K, L]) Second() J { return o.inner.second.First() }

// Third returns the index in slot 3.
func (o *FourIndexedOntology[AA, I, J, K, L]) Third() K { return o.inner.second.Second() }

// Fourth returns the index in slot 4.
func (o *FourIndexedOntology[AA, I, J, K, L]) Fourth() L { return o.inner.second.Third() }

// Decompose consumes the composite, yielding its indexes in slot order.
func (o *FourIndexedOntology[AA, I, J, K, L]) Decompose() (I, J, K, L) {
	i, jkl := o.inner.Decompose()
	j, k, l := jkl.Decompose()
	return i, j, k, l
}

func (o *FourIndexedOntology[AA, I, J, K, L]) ID() model.OntologyID { return o.inner.ID() }

func (o *FourIndexedOntology[AA, I, J, K, L]) SetID(id model.OntologyID) { o.inner.SetID(id) }

func (o *FourIndexedOntology[AA, I, J, K, L]) DocIRI() (model.IRI, bool) { return o.inner.DocIRI() }

func (o *FourIndexedOntology[AA, I, J, K, L]) SetDocIRI(iri model.IRI) { o.inner.SetDocIRI(iri) }

func (o *FourIndexedOntology[AA, I, J, K, L]) ClearDocIRI() { o.inner.ClearDocIRI() }

func (o *FourIndexedOntology[AA, I, J, K, L]) Insert(ax model.AsAnnotated) bool {
	return o.inner.Insert(ax)
}

func (o *FourIndexedOntology[AA, I, J, K, L]) Remove(ax *model.AnnotatedAxiom) bool {
	return o.inner.Remove(ax)
}

func (o *FourIndexedOntology[AA, I, J, K, L]) Take(ax *model.AnnotatedAxiom) *model.AnnotatedAxiom {
	return o.inner.Take(ax)
}

func (o *FourIndexedOntology[AA, I, J, K, L]) IndexInsert(h AA) bool {
	return o.inner.IndexInsert(h)
}

func (o *FourIndexedOntology[AA, I, J, K, L]) IndexRemove(ax *model.AnnotatedAxiom) bool {
	return o.inner.IndexRemove(ax)
}

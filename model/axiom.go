package model

import "slices"

// AxiomKind discriminates the sealed Axiom variants.
type AxiomKind string

// Axiom kinds.
const (
	KindDeclareClass              AxiomKind = "DeclareClass"
	KindDeclareObjectProperty     AxiomKind = "DeclareObjectProperty"
	KindDeclareDataProperty       AxiomKind = "DeclareDataProperty"
	KindDeclareAnnotationProperty AxiomKind = "DeclareAnnotationProperty"
	KindDeclareNamedIndividual    AxiomKind = "DeclareNamedIndividual"
	KindDeclareDatatype           AxiomKind = "DeclareDatatype"
	KindSubClassOf                AxiomKind = "SubClassOf"
	KindAnnotationAssertion       AxiomKind = "AnnotationAssertion"
	KindOntologyAnnotation        AxiomKind = "OntologyAnnotation"
)

// Axiom is a sealed interface representing one logical statement.
// Only the declaration axioms, SubClassOf, AnnotationAssertion, and
// OntologyAnnotation implement it.
//
// The indexed stores treat axioms as opaque comparable values; nothing in
// the ontology package depends on the variant set.
type Axiom interface {
	axiom() // Sealed - only these types implement it
	Kind() AxiomKind
	Annotated() AnnotatedAxiom
}

// AsAnnotated is implemented by every value that can stand in for an
// annotated axiom: axioms, named entities (through their declarations),
// and AnnotatedAxiom itself.
type AsAnnotated interface {
	Annotated() AnnotatedAxiom
}

// DeclareClass declares a class entity.
type DeclareClass struct{ Class Class }

func (DeclareClass) axiom() {}

func (DeclareClass) Kind() AxiomKind { return KindDeclareClass }

func (a DeclareClass) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// DeclareObjectProperty declares an object property entity.
type DeclareObjectProperty struct{ ObjectProperty ObjectProperty }

func (DeclareObjectProperty) axiom() {}

func (DeclareObjectProperty) Kind() AxiomKind { return KindDeclareObjectProperty }

func (a DeclareObjectProperty) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// DeclareDataProperty declares a data property entity.
type DeclareDataProperty struct{ DataProperty DataProperty }

func (DeclareDataProperty) axiom() {}

func (DeclareDataProperty) Kind() AxiomKind { return KindDeclareDataProperty }

func (a DeclareDataProperty) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// DeclareAnnotationProperty declares an annotation property entity.
type DeclareAnnotationProperty struct{ AnnotationProperty AnnotationProperty }

func (DeclareAnnotationProperty) axiom() {}

func (DeclareAnnotationProperty) Kind() AxiomKind { return KindDeclareAnnotationProperty }

func (a DeclareAnnotationProperty) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// DeclareNamedIndividual declares a named individual entity.
type DeclareNamedIndividual struct{ NamedIndividual NamedIndividual }

func (DeclareNamedIndividual) axiom() {}

func (DeclareNamedIndividual) Kind() AxiomKind { return KindDeclareNamedIndividual }

func (a DeclareNamedIndividual) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// DeclareDatatype declares a datatype entity.
type DeclareDatatype struct{ Datatype Datatype }

func (DeclareDatatype) axiom() {}

func (DeclareDatatype) Kind() AxiomKind { return KindDeclareDatatype }

func (a DeclareDatatype) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// SubClassOf states that Sub is a subclass of Super.
type SubClassOf struct {
	Sub   Class
	Super Class
}

func (SubClassOf) axiom() {}

func (SubClassOf) Kind() AxiomKind { return KindSubClassOf }

func (a SubClassOf) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// AnnotationAssertion attaches an annotation to an IRI-identified subject.
type AnnotationAssertion struct {
	Subject    IRI
	Annotation Annotation
}

func (AnnotationAssertion) axiom() {}

func (AnnotationAssertion) Kind() AxiomKind { return KindAnnotationAssertion }

func (a AnnotationAssertion) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// OntologyAnnotation attaches an annotation to the ontology itself.
type OntologyAnnotation struct{ Annotation Annotation }

func (OntologyAnnotation) axiom() {}

func (OntologyAnnotation) Kind() AxiomKind { return KindOntologyAnnotation }

func (a OntologyAnnotation) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: a} }

// AnnotationValue is a sealed interface over annotation value kinds.
// Only IRIValue and LiteralValue implement it.
type AnnotationValue interface {
	annotationValue() // Sealed - only these types implement it
}

// IRIValue is an annotation value naming an IRI.
type IRIValue struct{ IRI IRI }

func (IRIValue) annotationValue() {}

// LiteralValue is an annotation value carrying a literal.
type LiteralValue struct{ Literal Literal }

func (LiteralValue) annotationValue() {}

// Literal is a data value: lexical form plus optional language tag and
// optional datatype IRI.
type Literal struct {
	Value    string
	Lang     string
	Datatype IRI
}

// Annotation pairs an annotation property with a value.
type Annotation struct {
	Property AnnotationProperty
	Value    AnnotationValue
}

// AnnotatedAxiom is an axiom together with its annotation set. This is the
// logical value the indexed stores hold.
//
// Annotations are kept in canonical order with duplicates removed; use
// NewAnnotatedAxiom rather than constructing the struct directly when the
// annotation set is non-empty.
type AnnotatedAxiom struct {
	Axiom       Axiom
	Annotations []Annotation
}

// NewAnnotatedAxiom builds an annotated axiom, normalizing the annotation
// set to canonical order and removing duplicates.
func NewAnnotatedAxiom(ax Axiom, anns ...Annotation) AnnotatedAxiom {
	if len(anns) == 0 {
		return AnnotatedAxiom{Axiom: ax}
	}
	sorted := append([]Annotation(nil), anns...)
	slices.SortFunc(sorted, compareAnnotations)
	sorted = slices.CompactFunc(sorted, func(a, b Annotation) bool {
		return compareAnnotations(a, b) == 0
	})
	return AnnotatedAxiom{Axiom: ax, Annotations: sorted}
}

// Annotated returns the axiom itself, satisfying AsAnnotated.
func (a AnnotatedAxiom) Annotated() AnnotatedAxiom { return a }

// Clone returns a copy sharing the axiom value but owning its own
// annotation slice.
func (a *AnnotatedAxiom) Clone() *AnnotatedAxiom {
	cp := AnnotatedAxiom{Axiom: a.Axiom}
	if len(a.Annotations) > 0 {
		cp.Annotations = append([]Annotation(nil), a.Annotations...)
	}
	return &cp
}

// Compare orders axioms by their canonical encodings. The result is a
// total order consistent with Equal and Key.
func (a *AnnotatedAxiom) Compare(b *AnnotatedAxiom) int {
	return compareCanonical(a, b)
}

// Equal reports structural equality.
func (a *AnnotatedAxiom) Equal(b *AnnotatedAxiom) bool {
	return a.Compare(b) == 0
}

// String renders the canonical form, for debugging.
func (a AnnotatedAxiom) String() string {
	return string(a.CanonicalBytes())
}

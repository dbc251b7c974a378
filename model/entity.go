package model

// NamedEntity is a sealed interface over the six named entity kinds.
// Only Class, ObjectProperty, DataProperty, AnnotationProperty,
// NamedIndividual, and Datatype implement it.
//
// Every entity yields its declaration axiom and is directly insertable
// into a mutable ontology (it implements AsAnnotated through the
// declaration).
type NamedEntity interface {
	namedEntity() // Sealed - only these types implement it
	EntityIRI() IRI
	Declaration() Axiom
	Annotated() AnnotatedAxiom
}

// Class is a named class entity.
type Class struct{ IRI IRI }

func (Class) namedEntity() {}

// EntityIRI returns the entity's IRI.
func (c Class) EntityIRI() IRI { return c.IRI }

// Declaration returns the declaration axiom for this class.
func (c Class) Declaration() Axiom { return DeclareClass{Class: c} }

// Annotated returns the declaration as an unannotated AnnotatedAxiom.
func (c Class) Annotated() AnnotatedAxiom { return AnnotatedAxiom{Axiom: c.Declaration()} }

// ObjectProperty is a named object property entity.
type ObjectProperty struct{ IRI IRI }

func (ObjectProperty) namedEntity() {}

func (p ObjectProperty) EntityIRI() IRI { return p.IRI }

func (p ObjectProperty) Declaration() Axiom { return DeclareObjectProperty{ObjectProperty: p} }

func (p ObjectProperty) Annotated() AnnotatedAxiom {
	return AnnotatedAxiom{Axiom: p.Declaration()}
}

// DataProperty is a named data property entity.
type DataProperty struct{ IRI IRI }

func (DataProperty) namedEntity() {}

func (p DataProperty) EntityIRI() IRI { return p.IRI }

func (p DataProperty) Declaration() Axiom { return DeclareDataProperty{DataProperty: p} }

func (p DataProperty) Annotated() AnnotatedAxiom {
	return AnnotatedAxiom{Axiom: p.Declaration()}
}

// AnnotationProperty is a named annotation property entity.
type AnnotationProperty struct{ IRI IRI }

func (AnnotationProperty) namedEntity() {}

func (p AnnotationProperty) EntityIRI() IRI { return p.IRI }

func (p AnnotationProperty) Declaration() Axiom {
	return DeclareAnnotationProperty{AnnotationProperty: p}
}

func (p AnnotationProperty) Annotated() AnnotatedAxiom {
	return AnnotatedAxiom{Axiom: p.Declaration()}
}

// NamedIndividual is a named individual entity.
type NamedIndividual struct{ IRI IRI }

func (NamedIndividual) namedEntity() {}

func (n NamedIndividual) EntityIRI() IRI { return n.IRI }

func (n NamedIndividual) Declaration() Axiom { return DeclareNamedIndividual{NamedIndividual: n} }

func (n NamedIndividual) Annotated() AnnotatedAxiom {
	return AnnotatedAxiom{Axiom: n.Declaration()}
}

// Datatype is a named datatype entity.
type Datatype struct{ IRI IRI }

func (Datatype) namedEntity() {}

func (d Datatype) EntityIRI() IRI { return d.IRI }

func (d Datatype) Declaration() Axiom { return DeclareDatatype{Datatype: d} }

func (d Datatype) Annotated() AnnotatedAxiom {
	return AnnotatedAxiom{Axiom: d.Declaration()}
}

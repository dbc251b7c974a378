// Package testutil provides shared fixtures for owlet tests.
package testutil

import "github.com/roach88/owlet/model"

// SampleAxioms returns three distinct annotated axioms built from one
// shared Build: a class, an object property, and a data property
// declaration. The same inputs always produce the same axioms, so tests
// using them are deterministic.
func SampleAxioms() (a, b, c model.AnnotatedAxiom) {
	bld := model.NewBuild()
	a = bld.Class("http://www.example.com/c").Annotated()
	b = bld.ObjectProperty("http://www.example.com/p").Annotated()
	c = bld.DataProperty("http://www.example.com/d").Annotated()
	return a, b, c
}

// AnnotatedSample returns a class declaration carrying one comment
// annotation, for tests that need a non-empty annotation set.
func AnnotatedSample() model.AnnotatedAxiom {
	bld := model.NewBuild()
	return model.NewAnnotatedAxiom(
		bld.Class("http://www.example.com/c").Declaration(),
		model.Annotation{
			Property: bld.AnnotationProperty("http://www.w3.org/2000/01/rdf-schema#comment"),
			Value:    model.LiteralValue{Literal: model.Literal{Value: "a sample class"}},
		},
	)
}

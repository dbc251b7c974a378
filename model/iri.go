package model

import (
	"sync"

	"golang.org/x/text/unicode/norm"
)

// IRI is an internationalized resource identifier.
//
// IRIs are immutable and comparable; equal IRIs constructed through the
// same Build share one backing string. The zero IRI is "absent" wherever
// an IRI is optional.
type IRI struct {
	s string
}

// String returns the IRI as a string.
func (i IRI) String() string { return i.s }

// IsEmpty reports whether this is the zero IRI.
func (i IRI) IsEmpty() bool { return i.s == "" }

// Build is the construction context for IRIs and named entities.
//
// Build interns IRIs: constructing the same IRI twice yields values backed
// by one shared string. Input is NFC-normalized at this boundary, so two
// spellings of the same Unicode text produce the same IRI.
//
// Build is safe for concurrent use.
type Build struct {
	mu   sync.Mutex
	iris map[string]IRI
}

// NewBuild creates an empty construction context.
func NewBuild() *Build {
	return &Build{iris: make(map[string]IRI)}
}

// IRI returns the interned IRI for s.
func (b *Build) IRI(s string) IRI {
	s = norm.NFC.String(s)
	b.mu.Lock()
	defer b.mu.Unlock()
	if iri, ok := b.iris[s]; ok {
		return iri
	}
	iri := IRI{s: s}
	b.iris[s] = iri
	return iri
}

// Class constructs a class entity.
func (b *Build) Class(s string) Class { return Class{IRI: b.IRI(s)} }

// ObjectProperty constructs an object property entity.
func (b *Build) ObjectProperty(s string) ObjectProperty { return ObjectProperty{IRI: b.IRI(s)} }

// DataProperty constructs a data property entity.
func (b *Build) DataProperty(s string) DataProperty { return DataProperty{IRI: b.IRI(s)} }

// AnnotationProperty constructs an annotation property entity.
func (b *Build) AnnotationProperty(s string) AnnotationProperty {
	return AnnotationProperty{IRI: b.IRI(s)}
}

// NamedIndividual constructs a named individual entity.
func (b *Build) NamedIndividual(s string) NamedIndividual { return NamedIndividual{IRI: b.IRI(s)} }

// Datatype constructs a datatype entity.
func (b *Build) Datatype(s string) Datatype { return Datatype{IRI: b.IRI(s)} }

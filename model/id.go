package model

import "github.com/google/uuid"

// OntologyID identifies an ontology: an optional ontology IRI plus an
// optional version IRI. The zero value is the anonymous identity.
type OntologyID struct {
	IRI        IRI
	VersionIRI IRI
}

// IsAnonymous reports whether the ontology has no IRI.
func (id OntologyID) IsAnonymous() bool { return id.IRI.IsEmpty() }

// FreshOntologyID mints a distinguishable urn:uuid identity for an
// ontology that has no authored IRI.
func FreshOntologyID() OntologyID {
	return OntologyID{IRI: IRI{s: "urn:uuid:" + uuid.NewString()}}
}

package vocab

import (
	"github.com/cockroachdb/errors"

	"github.com/roach88/owlet/model"
)

// ErrUnrecognizedEntityType reports a type IRI that does not resolve to
// any named entity kind. Callers should treat it as a recoverable,
// per-call condition.
var ErrUnrecognizedEntityType = errors.New("unrecognized entity type")

// EntityForIRI resolves a type IRI plus an entity IRI into a constructed
// named entity. It fails with ErrUnrecognizedEntityType when the type IRI
// is too short to carry a recognized suffix or the suffix is unknown.
//
// Safe to call concurrently; the Build carries the only shared state and
// synchronizes itself.
func EntityForIRI(typeIRI, entityIRI string, b *model.Build) (model.NamedEntity, error) {
	// Datatypes are declared with an RDF schema element, not an OWL type.
	if typeIRI == RDFSDatatype {
		return b.Datatype(entityIRI), nil
	}

	if len(typeIRI) < len(OWL) {
		return nil, errors.Wrapf(ErrUnrecognizedEntityType, "IRI is not for a type of entity: %s", typeIRI)
	}

	switch typeIRI[len(OWL):] {
	case "Class":
		return b.Class(entityIRI), nil
	case "ObjectProperty":
		return b.ObjectProperty(entityIRI), nil
	case "DatatypeProperty":
		return b.DataProperty(entityIRI), nil
	case "AnnotationProperty":
		return b.AnnotationProperty(entityIRI), nil
	case "NamedIndividual":
		return b.NamedIndividual(entityIRI), nil
	default:
		return nil, errors.Wrapf(ErrUnrecognizedEntityType, "IRI is not a type of entity: %s", typeIRI)
	}
}

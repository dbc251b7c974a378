package vocab

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlet/model"
)

func TestEntityForIRI(t *testing.T) {
	tests := []struct {
		name    string
		typeIRI string
		want    model.NamedEntity
	}{
		{"class", OWLClass, model.Class{}},
		{"object property", "http://www.w3.org/2002/07/owl#ObjectProperty", model.ObjectProperty{}},
		{"data property", "http://www.w3.org/2002/07/owl#DatatypeProperty", model.DataProperty{}},
		{"annotation property", "http://www.w3.org/2002/07/owl#AnnotationProperty", model.AnnotationProperty{}},
		{"named individual", "http://www.w3.org/2002/07/owl#NamedIndividual", model.NamedIndividual{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := model.NewBuild()
			entity, err := EntityForIRI(tt.typeIRI, "http://www.example.com/e", b)
			require.NoError(t, err)
			assert.IsType(t, tt.want, entity)
			assert.Equal(t, "http://www.example.com/e", entity.EntityIRI().String())
		})
	}
}

func TestEntityForIRIDatatype(t *testing.T) {
	// Datatypes declare through the RDF schema element, not an OWL type.
	b := model.NewBuild()
	entity, err := EntityForIRI(RDFSDatatype, "http://www.example.com/dt", b)
	require.NoError(t, err)
	assert.IsType(t, model.Datatype{}, entity)
}

func TestEntityForIRITooShort(t *testing.T) {
	b := model.NewBuild()
	_, err := EntityForIRI("http://short/", "http://www.example.com/e", b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrecognizedEntityType))
	assert.Contains(t, err.Error(), "not for a type of entity")
}

func TestEntityForIRIUnknownSuffix(t *testing.T) {
	b := model.NewBuild()
	_, err := EntityForIRI(OWLRestriction, "http://www.example.com/e", b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrecognizedEntityType))
	assert.Contains(t, err.Error(), "not a type of entity")
}

func TestEntityForIRIWrongNamespace(t *testing.T) {
	// Long enough to slice, but the suffix after the OWL prefix length
	// does not name an entity type.
	b := model.NewBuild()
	_, err := EntityForIRI("http://www.example.com/vocabulary#Class", "http://www.example.com/e", b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrecognizedEntityType))
}

package vocab

// Namespace identifies one of the built-in vocabularies.
type Namespace string

// Built-in namespaces.
const (
	OWL  Namespace = "http://www.w3.org/2002/07/owl#"
	RDF  Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS Namespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSD  Namespace = "http://www.w3.org/2001/XMLSchema#"
)

var namespaces = [...]Namespace{OWL, RDF, RDFS, XSD}

// LookupNamespace finds the built-in namespace with the given IRI.
func LookupNamespace(iri string) (Namespace, bool) {
	for _, ns := range namespaces {
		if string(ns) == iri {
			return ns, true
		}
	}
	return "", false
}

// OWL terms.
const (
	// Lower case
	OWLAllValuesFrom     = string(OWL) + "allValuesFrom"
	OWLAnnotatedSource   = string(OWL) + "annotatedSource"
	OWLAnnotatedProperty = string(OWL) + "annotatedProperty"
	OWLAnnotatedTarget   = string(OWL) + "annotatedTarget"
	OWLIntersectionOf    = string(OWL) + "intersectionOf"
	OWLOnProperty        = string(OWL) + "onProperty"
	OWLSomeValuesFrom    = string(OWL) + "someValuesFrom"
	OWLVersionIRI        = string(OWL) + "versionIRI"

	// Upper case
	OWLAxiom            = string(OWL) + "Axiom"
	OWLClass            = string(OWL) + "Class"
	OWLDatatype         = string(OWL) + "Datatype"
	OWLDatatypeProperty = string(OWL) + "DatatypeProperty"
	OWLNothing          = string(OWL) + "Nothing"
	OWLObjectProperty   = string(OWL) + "ObjectProperty"
	OWLOntology         = string(OWL) + "Ontology"
	OWLRestriction      = string(OWL) + "Restriction"
	OWLThing            = string(OWL) + "Thing"
)

// RDF terms.
const (
	RDFFirst = string(RDF) + "first"
	RDFNil   = string(RDF) + "nil"
	RDFRest  = string(RDF) + "rest"
	RDFType  = string(RDF) + "type"
)

// RDFS terms. RDFSDatatype is the RDF schema element datatypes are
// declared with; RDFSLiteral is the OWL 2 default datatype.
const (
	RDFSSubClassOf = string(RDFS) + "subClassOf"
	RDFSDatatype   = string(RDFS) + "Datatype"
	RDFSLiteral    = string(RDFS) + "Literal"
)

var builtInAnnotations = [...]string{
	string(RDFS) + "label",
	string(RDFS) + "comment",
	string(RDFS) + "seeAlso",
	string(RDFS) + "isDefinedBy",
	string(OWL) + "deprecated",
	string(OWL) + "versionInfo",
	string(OWL) + "priorVersion",
	string(OWL) + "backwardCompatibleWith",
	string(OWL) + "incompatibleWith",
}

// IsBuiltInAnnotation reports whether iri names one of the built-in
// annotation properties.
func IsBuiltInAnnotation(iri string) bool {
	for _, a := range builtInAnnotations {
		if a == iri {
			return true
		}
	}
	return false
}

// Facet is an XSD constraining facet.
type Facet string

// Constraining facets.
const (
	FacetLength         Facet = Facet(string(XSD) + "length")
	FacetMinLength      Facet = Facet(string(XSD) + "minLength")
	FacetMaxLength      Facet = Facet(string(XSD) + "maxLength")
	FacetPattern        Facet = Facet(string(XSD) + "pattern")
	FacetMinInclusive   Facet = Facet(string(XSD) + "minInclusive")
	FacetMinExclusive   Facet = Facet(string(XSD) + "minExclusive")
	FacetMaxInclusive   Facet = Facet(string(XSD) + "maxInclusive")
	FacetMaxExclusive   Facet = Facet(string(XSD) + "maxExclusive")
	FacetTotalDigits    Facet = Facet(string(XSD) + "totalDigits")
	FacetFractionDigits Facet = Facet(string(XSD) + "fractionDigits")
	FacetLangRange      Facet = Facet(string(RDF) + "langRange")
)

var facets = [...]Facet{
	FacetLength,
	FacetMinLength,
	FacetMaxLength,
	FacetPattern,
	FacetMinInclusive,
	FacetMinExclusive,
	FacetMaxInclusive,
	FacetMaxExclusive,
	FacetTotalDigits,
	FacetFractionDigits,
	FacetLangRange,
}

// FacetForIRI finds the constraining facet with the given IRI.
func FacetForIRI(iri string) (Facet, bool) {
	for _, f := range facets {
		if string(f) == iri {
			return f, true
		}
	}
	return "", false
}

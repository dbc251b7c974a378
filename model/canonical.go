package model

import (
	"bytes"
	"encoding/json"

	"golang.org/x/text/unicode/norm"
)

// CanonicalBytes renders the axiom's canonical form: a deterministic JSON
// encoding with NFC-normalized strings, fixed field order, and no HTML
// escaping. Byte equality of canonical forms defines axiom identity;
// bytes.Compare over them defines the total order.
func (a *AnnotatedAxiom) CanonicalBytes() []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if len(a.Annotations) > 0 {
		buf.WriteString(`"annotations":[`)
		for i := range a.Annotations {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonicalAnnotation(&buf, a.Annotations[i])
		}
		buf.WriteString(`],`)
	}
	buf.WriteString(`"axiom":`)
	writeCanonicalAxiom(&buf, a.Axiom)
	buf.WriteByte('}')
	return buf.Bytes()
}

func compareCanonical(a, b *AnnotatedAxiom) int {
	return bytes.Compare(a.CanonicalBytes(), b.CanonicalBytes())
}

func compareAnnotations(a, b Annotation) int {
	var ab, bb bytes.Buffer
	writeCanonicalAnnotation(&ab, a)
	writeCanonicalAnnotation(&bb, b)
	return bytes.Compare(ab.Bytes(), bb.Bytes())
}

func writeCanonicalAxiom(buf *bytes.Buffer, ax Axiom) {
	switch v := ax.(type) {
	case DeclareClass:
		writeCanonicalDeclaration(buf, v.Kind(), v.Class.IRI)
	case DeclareObjectProperty:
		writeCanonicalDeclaration(buf, v.Kind(), v.ObjectProperty.IRI)
	case DeclareDataProperty:
		writeCanonicalDeclaration(buf, v.Kind(), v.DataProperty.IRI)
	case DeclareAnnotationProperty:
		writeCanonicalDeclaration(buf, v.Kind(), v.AnnotationProperty.IRI)
	case DeclareNamedIndividual:
		writeCanonicalDeclaration(buf, v.Kind(), v.NamedIndividual.IRI)
	case DeclareDatatype:
		writeCanonicalDeclaration(buf, v.Kind(), v.Datatype.IRI)
	case SubClassOf:
		buf.WriteString(`{"kind":`)
		buf.Write(canonicalString(string(v.Kind())))
		buf.WriteString(`,"sub":`)
		buf.Write(canonicalString(v.Sub.IRI.s))
		buf.WriteString(`,"super":`)
		buf.Write(canonicalString(v.Super.IRI.s))
		buf.WriteByte('}')
	case AnnotationAssertion:
		buf.WriteString(`{"annotation":`)
		writeCanonicalAnnotation(buf, v.Annotation)
		buf.WriteString(`,"kind":`)
		buf.Write(canonicalString(string(v.Kind())))
		buf.WriteString(`,"subject":`)
		buf.Write(canonicalString(v.Subject.s))
		buf.WriteByte('}')
	case OntologyAnnotation:
		buf.WriteString(`{"annotation":`)
		writeCanonicalAnnotation(buf, v.Annotation)
		buf.WriteString(`,"kind":`)
		buf.Write(canonicalString(string(v.Kind())))
		buf.WriteByte('}')
	default:
		// A nil Axiom has no canonical form of its own.
		buf.WriteString("null")
	}
}

func writeCanonicalDeclaration(buf *bytes.Buffer, kind AxiomKind, iri IRI) {
	buf.WriteString(`{"entity":`)
	buf.Write(canonicalString(iri.s))
	buf.WriteString(`,"kind":`)
	buf.Write(canonicalString(string(kind)))
	buf.WriteByte('}')
}

func writeCanonicalAnnotation(buf *bytes.Buffer, ann Annotation) {
	buf.WriteString(`{"property":`)
	buf.Write(canonicalString(ann.Property.IRI.s))
	buf.WriteString(`,"value":`)
	switch v := ann.Value.(type) {
	case IRIValue:
		buf.WriteString(`{"iri":`)
		buf.Write(canonicalString(v.IRI.s))
		buf.WriteByte('}')
	case LiteralValue:
		buf.WriteByte('{')
		sep := false
		if !v.Literal.Datatype.IsEmpty() {
			buf.WriteString(`"datatype":`)
			buf.Write(canonicalString(v.Literal.Datatype.s))
			sep = true
		}
		if v.Literal.Lang != "" {
			if sep {
				buf.WriteByte(',')
			}
			buf.WriteString(`"lang":`)
			buf.Write(canonicalString(v.Literal.Lang))
			sep = true
		}
		if sep {
			buf.WriteByte(',')
		}
		buf.WriteString(`"literal":`)
		buf.Write(canonicalString(v.Literal.Value))
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	buf.WriteByte('}')
}

// canonicalString produces a canonical JSON string: NFC normalized, with
// HTML escaping disabled so <, >, and & survive as-is.
func canonicalString(s string) []byte {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(normalized)

	// json.Encoder adds a trailing newline, remove it.
	result := buf.Bytes()
	if n := len(result); n > 0 && result[n-1] == '\n' {
		result = result[:n-1]
	}
	return result
}

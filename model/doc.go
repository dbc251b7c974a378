// Package model provides the canonical data model for owlet ontologies.
//
// This package contains the value types every other package builds on:
// IRIs and their interning Build context, named entities, axioms,
// annotations, and the AnnotatedAxiom value the indexed stores hold.
// All other packages import model; model imports nothing internal, which
// keeps it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Identity is structural: two axioms are the same iff their canonical
//     encodings are byte-identical
//   - Strings are NFC-normalized at the construction boundary, never later
//   - No operation on a constructed value can fail
package model

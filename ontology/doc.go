// Package ontology provides multi-index stores for annotated axioms.
//
// An indexed ontology uses one to four Index implementations as the
// backing store for its axioms. The same AnnotatedAxiom is shared between
// indexes through a Handle, so each index references one allocation rather
// than holding its own copy. The Index contract covers only mutation
// notification; search and query surfaces belong to concrete index
// implementations.
//
// Indexes are composed with OneIndexedOntology, TwoIndexedOntology,
// ThreeIndexedOntology, and FourIndexedOntology, which behave like named
// tuples: each slot keeps its own concrete index type. Composites of arity
// two and above are themselves indexes, which is how the higher arities
// are built.
//
// An index is not required to retain every handle it is given, but at
// least one index per composite should, or inserted axioms become
// unrecoverable; the composite keeps no side copy. SetIndex is the simple
// way of achieving this.
package ontology

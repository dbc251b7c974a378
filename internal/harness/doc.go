// Package harness provides conformance testing for the indexed-ontology
// composites.
//
// The harness builds a composite from a declarative slot list, drives a
// flow of insert/remove/take mutations against it, and validates the
// per-step results and the final per-slot state.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	slots: [set, set, "null"]
//	axioms:
//	  A: { type: "http://www.w3.org/2002/07/owl#Class", iri: "http://www.example.com/c" }
//	  S: { sub: "http://www.example.com/c", super: "http://www.example.com/d" }
//	flow:
//	  - op: insert
//	    axiom: A
//	    expect: true
//	  - op: remove
//	    axiom: A
//	    expect: true
//	assertions:
//	  - type: count
//	    slot: 0
//	    count: 0
//	  - type: slots_equal
//
// Declaration axioms resolve their type IRI through vocab.EntityForIRI;
// the sub/super form builds a subclass axiom between named classes.
//
// # Assertion Types
//
//   - count: a slot tracks exactly N axioms
//   - contains: a set slot does (or does not) track a named axiom
//   - slots_equal: all set slots track pairwise-equal content
//
// # Deterministic Testing
//
// A scenario's trace depends only on the scenario itself: slot order is
// fixed, mutation results are pure functions of the flow, and the golden
// snapshot uses a canonical encoding. The same scenario always produces
// byte-identical golden output.
package harness

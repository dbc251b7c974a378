// Package vocab provides the OWL, RDF, RDFS, and XSD vocabulary constants
// and the type-resolution lookup that maps type IRIs to named entities.
//
// The tables here are small, fixed, and process-wide; reverse lookups are
// linear scans, which is fine at a few dozen entries.
package vocab

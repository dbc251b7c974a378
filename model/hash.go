package model

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainAxiom is the domain prefix for axiom content hashing.
// Version suffix enables future algorithm migration.
const DomainAxiom = "owlet/axiom/v1"

// Key is the content-addressed identity of an annotated axiom: the
// hex-encoded, domain-separated SHA-256 of its canonical form. Keys are
// stable across processes and usable as map keys in hash-based indexes.
type Key string

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) Key {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return Key(hex.EncodeToString(h.Sum(nil)))
}

// Key computes the axiom's content-addressed identity.
func (a *AnnotatedAxiom) Key() Key {
	return hashWithDomain(DomainAxiom, a.CanonicalBytes())
}

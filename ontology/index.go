package ontology

import "github.com/roach88/owlet/model"

// Index is the pluggable unit of indexing. An index is told about handle
// insertions and removals and reports whether its own state changed;
// everything else, including any query surface, is up to the concrete
// implementation.
//
// An index may be lossy: it is free to ignore handles that don't match
// the shape it tracks and report false for them. Neither operation can
// fail.
type Index[AA ForIndex[AA]] interface {
	// IndexInsert potentially incorporates the handle. Reports true iff
	// the handle was not already tracked; inserting an already-tracked
	// handle is a no-op that reports false.
	IndexInsert(AA) bool

	// IndexRemove untracks the logical axiom. Reports true iff something
	// was removed.
	IndexRemove(*model.AnnotatedAxiom) bool
}

// Take removes ax from idx and, if anything was removed, returns a copy
// of the supplied value; nil otherwise. The value is recoverable only
// because the caller supplies it; the index need not reconstruct it.
func Take[AA ForIndex[AA]](idx Index[AA], ax *model.AnnotatedAxiom) *model.AnnotatedAxiom {
	if idx.IndexRemove(ax) {
		return ax.Clone()
	}
	return nil
}

// NullIndex tracks nothing. Both operations always report false. It fills
// an unused composite slot and serves as a contract-compliance test
// double; it carries no data and performs no allocation.
type NullIndex[AA ForIndex[AA]] struct{}

func (NullIndex[AA]) IndexInsert(AA) bool { return false }

func (NullIndex[AA]) IndexRemove(*model.AnnotatedAxiom) bool { return false }

package ontology

import (
	"slices"

	"github.com/roach88/owlet/model"
)

// SetIndex retains every inserted handle, keyed by content identity.
// It is the canonical "store everything" index: a composite that includes
// a SetIndex never loses axioms.
type SetIndex[AA ForIndex[AA]] struct {
	byKey map[model.Key]AA
}

// NewSetIndex creates an empty set index.
func NewSetIndex[AA ForIndex[AA]]() *SetIndex[AA] {
	return &SetIndex[AA]{byKey: make(map[model.Key]AA)}
}

func (s *SetIndex[AA]) IndexInsert(h AA) bool {
	if s.byKey == nil {
		s.byKey = make(map[model.Key]AA)
	}
	k := h.Key()
	if _, ok := s.byKey[k]; ok {
		return false
	}
	s.byKey[k] = h
	return true
}

func (s *SetIndex[AA]) IndexRemove(ax *model.AnnotatedAxiom) bool {
	k := ax.Key()
	if _, ok := s.byKey[k]; !ok {
		return false
	}
	delete(s.byKey, k)
	return true
}

// Len reports the number of tracked axioms.
func (s *SetIndex[AA]) Len() int { return len(s.byKey) }

// Contains reports whether the logical axiom is tracked.
func (s *SetIndex[AA]) Contains(ax *model.AnnotatedAxiom) bool {
	_, ok := s.byKey[ax.Key()]
	return ok
}

// Axioms returns the tracked axioms in canonical order.
func (s *SetIndex[AA]) Axioms() []*model.AnnotatedAxiom {
	out := make([]*model.AnnotatedAxiom, 0, len(s.byKey))
	for _, h := range s.byKey {
		out = append(out, h.AnnotatedAxiom())
	}
	slices.SortFunc(out, (*model.AnnotatedAxiom).Compare)
	return out
}

// Equal reports whether both indexes track the same logical content.
func (s *SetIndex[AA]) Equal(o *SetIndex[AA]) bool {
	if len(s.byKey) != len(o.byKey) {
		return false
	}
	for k := range s.byKey {
		if _, ok := o.byKey[k]; !ok {
			return false
		}
	}
	return true
}

package ontology

import (
	"slices"

	"github.com/roach88/owlet/model"
)

// KindIndex retains every inserted handle grouped by axiom kind, giving
// constant-time access to all axioms of one shape. It tracks the same
// population as a SetIndex, just through a different lens.
type KindIndex[AA ForIndex[AA]] struct {
	byKind map[model.AxiomKind]map[model.Key]AA
}

// NewKindIndex creates an empty kind index.
func NewKindIndex[AA ForIndex[AA]]() *KindIndex[AA] {
	return &KindIndex[AA]{byKind: make(map[model.AxiomKind]map[model.Key]AA)}
}

func (x *KindIndex[AA]) IndexInsert(h AA) bool {
	kind := h.AnnotatedAxiom().Axiom.Kind()
	bucket := x.byKind[kind]
	if bucket == nil {
		if x.byKind == nil {
			x.byKind = make(map[model.AxiomKind]map[model.Key]AA)
		}
		bucket = make(map[model.Key]AA)
		x.byKind[kind] = bucket
	}
	k := h.Key()
	if _, ok := bucket[k]; ok {
		return false
	}
	bucket[k] = h
	return true
}

func (x *KindIndex[AA]) IndexRemove(ax *model.AnnotatedAxiom) bool {
	kind := ax.Axiom.Kind()
	bucket := x.byKind[kind]
	k := ax.Key()
	if _, ok := bucket[k]; !ok {
		return false
	}
	delete(bucket, k)
	if len(bucket) == 0 {
		delete(x.byKind, kind)
	}
	return true
}

// Len reports the total number of tracked axioms across all kinds.
func (x *KindIndex[AA]) Len() int {
	n := 0
	for _, bucket := range x.byKind {
		n += len(bucket)
	}
	return n
}

// OfKind returns the tracked axioms of one kind in canonical order.
func (x *KindIndex[AA]) OfKind(kind model.AxiomKind) []*model.AnnotatedAxiom {
	bucket := x.byKind[kind]
	out := make([]*model.AnnotatedAxiom, 0, len(bucket))
	for _, h := range bucket {
		out = append(out, h.AnnotatedAxiom())
	}
	slices.SortFunc(out, (*model.AnnotatedAxiom).Compare)
	return out
}

// Kinds returns the kinds with at least one tracked axiom, sorted.
func (x *KindIndex[AA]) Kinds() []model.AxiomKind {
	out := make([]model.AxiomKind, 0, len(x.byKind))
	for kind := range x.byKind {
		out = append(out, kind)
	}
	slices.Sort(out)
	return out
}

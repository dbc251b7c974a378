package ontology

import (
	"sync"

	"github.com/roach88/owlet/model"
)

// Handle is the capability contract for stored axiom handles. A handle
// behaves as a transparent wrapper around its AnnotatedAxiom: equality,
// ordering, hashing, and formatting all delegate to the underlying value,
// and Clone shares the same allocation rather than copying it. No
// operation on a handle can fail.
type Handle[AA any] interface {
	// AnnotatedAxiom is the read-only projection back to the underlying
	// axiom. Callers must not mutate the result once the handle is shared.
	AnnotatedAxiom() *model.AnnotatedAxiom

	// Key returns the underlying axiom's content-addressed identity.
	Key() model.Key

	Equal(AA) bool
	Compare(AA) int

	// Clone returns a handle sharing the same underlying allocation.
	Clone() AA

	String() string
}

// ForIndex extends Handle with lossless conversion from the canonical
// axiom value. Any type satisfying ForIndex can be stored by any index
// implementation, which is what lets indexes be mixed freely.
//
// FromAxiom is callable on the zero value, so composites can convert
// without a constructor in hand:
//
//	var zero AA
//	h := zero.FromAxiom(ax)
type ForIndex[AA any] interface {
	Handle[AA]
	FromAxiom(*model.AnnotatedAxiom) AA
}

// RcAxiom is the thread-confined handle instantiation. Clones share one
// heap allocation; the content key is memoized lazily with no
// synchronization, so an RcAxiom must stay within one goroutine.
type RcAxiom struct{ s *rcState }

type rcState struct {
	ax    *model.AnnotatedAxiom
	key   model.Key
	keyed bool
}

// NewRcAxiom wraps ax in a thread-confined handle.
func NewRcAxiom(ax *model.AnnotatedAxiom) RcAxiom {
	return RcAxiom{s: &rcState{ax: ax}}
}

func (h RcAxiom) AnnotatedAxiom() *model.AnnotatedAxiom { return h.s.ax }

func (h RcAxiom) Key() model.Key {
	if !h.s.keyed {
		h.s.key = h.s.ax.Key()
		h.s.keyed = true
	}
	return h.s.key
}

func (h RcAxiom) Equal(o RcAxiom) bool {
	return h.s == o.s || h.s.ax.Equal(o.s.ax)
}

func (h RcAxiom) Compare(o RcAxiom) int { return h.s.ax.Compare(o.s.ax) }

func (h RcAxiom) Clone() RcAxiom { return RcAxiom{s: h.s} }

func (h RcAxiom) String() string { return h.s.ax.String() }

// FromAxiom converts the canonical axiom value into a handle.
func (RcAxiom) FromAxiom(ax *model.AnnotatedAxiom) RcAxiom { return NewRcAxiom(ax) }

// ArcAxiom is the cross-goroutine handle instantiation. Sharing is
// identical to RcAxiom, but the content key is memoized through sync.Once,
// so clones may be read concurrently from multiple goroutines while the
// owning composite is externally synchronized.
type ArcAxiom struct{ s *arcState }

type arcState struct {
	ax   *model.AnnotatedAxiom
	once sync.Once
	key  model.Key
}

// NewArcAxiom wraps ax in a share-safe handle.
func NewArcAxiom(ax *model.AnnotatedAxiom) ArcAxiom {
	return ArcAxiom{s: &arcState{ax: ax}}
}

func (h ArcAxiom) AnnotatedAxiom() *model.AnnotatedAxiom { return h.s.ax }

func (h ArcAxiom) Key() model.Key {
	h.s.once.Do(func() { h.s.key = h.s.ax.Key() })
	return h.s.key
}

func (h ArcAxiom) Equal(o ArcAxiom) bool {
	return h.s == o.s || h.s.ax.Equal(o.s.ax)
}

func (h ArcAxiom) Compare(o ArcAxiom) int { return h.s.ax.Compare(o.s.ax) }

func (h ArcAxiom) Clone() ArcAxiom { return ArcAxiom{s: h.s} }

func (h ArcAxiom) String() string { return h.s.ax.String() }

// FromAxiom converts the canonical axiom value into a handle.
func (ArcAxiom) FromAxiom(ax *model.AnnotatedAxiom) ArcAxiom { return NewArcAxiom(ax) }

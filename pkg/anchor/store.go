// Package anchor holds the central index shared by the circular and linear
// projections: the sequence position each view treats as its rotation or
// scroll reference.
//
// A [Store] is the single writer for both anchors. Projections read it;
// clicks, wheel rotation and scrolling funnel through [Store.SetAnchor].
// Subscribers are called synchronously with the latest value and never see
// a queue of intermediate values.
package anchor

import (
	"context"
	"sync"

	"github.com/matzehuels/seqmap/pkg/observability"
	"github.com/matzehuels/seqmap/pkg/seq"
)

// View names one of the two projections.
type View int

const (
	Circular View = iota
	Linear
)

func (v View) String() string {
	if v == Linear {
		return "linear"
	}
	return "circular"
}

// Index is the pair of anchors.
type Index struct {
	Circular int `json:"circular"`
	Linear   int `json:"linear"`
}

// Of returns the anchor for view v.
func (i Index) Of(v View) int {
	if v == Linear {
		return i.Linear
	}
	return i.Circular
}

// Store is an observable Index. The zero value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	n      int
	idx    Index
	subs   map[int]func(Index)
	nextID int
}

// New returns a store for a sequence of length n with both anchors at 0.
func New(n int) *Store {
	return &Store{n: n, subs: make(map[int]func(Index))}
}

// Get returns the current anchors.
func (s *Store) Get() Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

// Len returns the sequence length the store normalizes against.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.n
}

// SetAnchor moves the anchor for view to index (taken modulo N). It
// returns false, and notifies nobody, when the anchor already has that
// value.
func (s *Store) SetAnchor(view View, index int) bool {
	s.mu.Lock()
	index = seq.Mod(index, s.n)
	next := s.idx
	if view == Linear {
		next.Linear = index
	} else {
		next.Circular = index
	}
	if next == s.idx {
		s.mu.Unlock()
		return false
	}
	s.idx = next
	subs := make([]func(Index), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	observability.Anchor().OnAnchorChange(context.Background(), view.String(), index)
	for _, fn := range subs {
		fn(next)
	}
	return true
}

// Reset replaces the sequence length and returns both anchors to 0.
// Subscribers are notified only if an anchor moved.
func (s *Store) Reset(n int) {
	s.mu.Lock()
	s.n = n
	changed := s.idx != Index{}
	s.idx = Index{}
	subs := make([]func(Index), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(Index{})
	}
}

// Subscribe registers fn to receive every change. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Index)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

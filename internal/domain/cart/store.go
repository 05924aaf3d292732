// internal/domain/cart/store.go
package cart

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Store is the single source of truth for the live cart. State lives on the
// instance so independent carts (tests, future multi-session) never collide.
//
// Every mutation replaces the item slice wholesale rather than editing
// entries in place; subscribers therefore always observe a fully-formed
// snapshot and never a half-updated cart. Committed slices are never
// modified afterwards, so snapshots stay valid outside the lock.
//
// Store is safe for concurrent use: HTTP handlers run on separate
// goroutines and share one instance.
type Store struct {
	mu    sync.RWMutex
	items []LineItem

	nextHandle  int
	subscribers map[int]func()
	order       []int // notification follows registration order

	logger *logrus.Logger
}

// NewStore creates an empty cart store
func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		items:       []LineItem{},
		subscribers: map[int]func(){},
		logger:      logger,
	}
}

// Items returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// IsEmpty reports whether the cart has no line items
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) == 0
}

// TotalQuantity returns the sum of all line item quantities
func (s *Store) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// AddItem adds a product to the cart. If a line with the same id already
// exists its quantity is incremented, otherwise a new line is appended.
// Quantities below 1 are treated as 1.
func (s *Store) AddItem(p ProductInput, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	unit := p.Unit
	if unit == "" {
		unit = DefaultUnit
	}

	s.mutate(func(next []LineItem) []LineItem {
		for i := range next {
			if next[i].ID == p.ID {
				next[i].Quantity += quantity
				return next
			}
		}
		return append(next, LineItem{
			ID:        p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Image:     p.Image,
			Quantity:  quantity,
			Unit:      unit,
		})
	})
}

// SetQuantity sets the quantity of a line item. A quantity below 1 removes
// the line. An unknown id is tolerated; subscribers are still notified.
func (s *Store) SetQuantity(id string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(id)
		return
	}

	s.mutate(func(next []LineItem) []LineItem {
		for i := range next {
			if next[i].ID == id {
				next[i].Quantity = quantity
				break
			}
		}
		return next
	})
}

// RemoveItem removes the line item with the given id. Idempotent.
func (s *Store) RemoveItem(id string) {
	s.mutate(func(next []LineItem) []LineItem {
		kept := next[:0]
		for _, item := range next {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		return kept
	})
}

// Clear empties the cart
func (s *Store) Clear() {
	s.mutate(func([]LineItem) []LineItem {
		return []LineItem{}
	})
}

// Subscribe registers a callback invoked after every mutation and returns
// a function that deregisters it. Unsubscribing during notification is safe.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := s.nextHandle
	s.nextHandle++

	s.subscribers[handle] = fn
	s.order = append(s.order, handle)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.subscribers, handle)
		for i, h := range s.order {
			if h == handle {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// mutate clones the current items, applies fn, and swaps the result in as
// one critical section so concurrent writers cannot lose each other's
// updates. The lock is released before notification; listeners may read the
// store or unsubscribe without deadlocking.
func (s *Store) mutate(fn func(next []LineItem) []LineItem) {
	s.mu.Lock()
	s.items = fn(CloneItems(s.items))
	s.mu.Unlock()

	s.notify()
}

func (s *Store) notify() {
	// Snapshot the order so listeners unsubscribing mid-loop don't shift
	// the iteration under us
	s.mu.RLock()
	handles := make([]int, len(s.order))
	copy(handles, s.order)
	s.mu.RUnlock()

	for _, handle := range handles {
		s.mu.RLock()
		fn, ok := s.subscribers[handle]
		s.mu.RUnlock()
		if !ok {
			continue
		}
		s.invoke(handle, fn)
	}
}

// invoke isolates a panicking listener so the remaining listeners still run
func (s *Store) invoke(handle int, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithFields(logrus.Fields{
				"subscriber": handle,
				"panic":      r,
			}).Error("Cart subscriber panicked")
		}
	}()
	fn()
}

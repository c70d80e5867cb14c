package cart

import (
	"sync"

	"MiniCart/internal/catalog"
)

type Catalog interface {
	Get(id int64) (catalog.Product, bool)
}

type Summary struct {
	Count int   `json:"count"`
	Total int64 `json:"total"`
}

// Store holds a single cart shared by every client. All operations take the
// same mutex, so they appear to happen in one total order.
type Store struct {
	catalog Catalog
	metrics *Metrics

	mu    sync.Mutex
	items []catalog.Product
}

// NewStore returns an empty cart. m may be nil.
func NewStore(c Catalog, m *Metrics) *Store {
	return &Store{
		catalog: c,
		metrics: m,
		items:   make([]catalog.Product, 0, 8),
	}
}

func (s *Store) List() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add appends the catalog record for id. Unknown ids leave the cart unchanged
// and report false.
func (s *Store) Add(id int64) ([]catalog.Product, bool) {
	p, found := s.catalog.Get(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if found {
		s.items = append(s.items, p)
	}
	s.metrics.observe(opAdd, found, len(s.items))
	return s.snapshot(), found
}

// Remove drops every entry with the given id and reports how many went.
func (s *Store) Remove(id int64) ([]catalog.Product, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]catalog.Product, 0, len(s.items))
	for _, p := range s.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	removed := len(s.items) - len(kept)
	s.items = kept
	s.metrics.observe(opRemove, removed > 0, len(s.items))
	return s.snapshot(), removed
}

func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{Count: len(s.items)}
	for _, p := range s.items {
		sum.Total += p.Price
	}
	return sum
}

// snapshot must be called with mu held.
func (s *Store) snapshot() []catalog.Product {
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

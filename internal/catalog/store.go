package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrInvalidID   = errors.New("product id must be positive")
	ErrDuplicateID = errors.New("duplicate product id")
	ErrEmpty       = errors.New("catalog is empty")
)

type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Color string `json:"color"`
}

// Catalog is a read-only product set. It is never mutated after New returns,
// so concurrent readers need no locking.
type Catalog struct {
	sorted []Product
	byID   map[int64]Product
}

func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		sorted: make([]Product, 0, len(products)),
		byID:   make(map[int64]Product, len(products)),
	}

	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		c.byID[p.ID] = p
		c.sorted = append(c.sorted, p)
	}

	sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].ID < c.sorted[j].ID })
	return c, nil
}

func (c *Catalog) Ping(_ context.Context) error {
	if len(c.sorted) == 0 {
		return ErrEmpty
	}
	return nil
}

// List returns the products ordered by id. The slice is a copy.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.sorted))
	copy(out, c.sorted)
	return out
}

func (c *Catalog) Get(id int64) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Len() int { return len(c.sorted) }

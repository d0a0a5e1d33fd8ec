package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store/db"
)

// InMemory implements ProductStore using an in-memory map.
type InMemory struct {
	mu       sync.RWMutex
	products map[int64]db.Product
	nextID   int64
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore() *InMemory {
	return &InMemory{
		products: make(map[int64]db.Product),
		nextID:   1,
	}
}

// FindByID retrieves a product by its ID.
func (s *InMemory) FindByID(_ context.Context, id int64) (*db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products ordered by ID.
func (s *InMemory) FindAll(_ context.Context) ([]db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]db.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b db.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return list, nil
}

// Create creates a new product and returns it.
func (s *InMemory) Create(_ context.Context, params db.CreateParams) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := db.Product{
		ID:          s.nextID,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Quantity:    params.Quantity,
	}
	s.nextID++
	s.products[product.ID] = product

	return &product, nil
}

// Update replaces the stored product with the same ID.
func (s *InMemory) Update(_ context.Context, product db.Product) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID]; !exists {
		return nil, errors.ErrProductNotFound
	}
	s.products[product.ID] = product
	return &product, nil
}

// DeleteByID deletes a product by its ID.
func (s *InMemory) DeleteByID(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

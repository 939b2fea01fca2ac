package catalog

import (
	"sync"

	"storefront/error_messages"
)

// MemoryStore keeps the catalog in an ordered in-process slice seeded with the
// demo products. Used when no remote database is configured. The HTTP server
// serves requests concurrently, so access is guarded even though each request
// mutates at most one entry.
type MemoryStore struct {
	mu       sync.RWMutex
	products []Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: SeedProducts()}
}

func (s *MemoryStore) List() ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

func (s *MemoryStore) Create(p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.maxID() + 1
	s.products = append(s.products, p)
	return p, nil
}

func (s *MemoryStore) Update(p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return p, nil
		}
	}
	return Product{}, error_messages.ErrNotExists
}

func (s *MemoryStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return error_messages.ErrNotExists
}

func (s *MemoryStore) Reseed() ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = SeedProducts()
	products := make([]Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

func (s *MemoryStore) maxID() int {
	max := 0
	for _, p := range s.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"storefront/cart"
	"storefront/error_messages"
	"storefront/localdata"
)

// LocalStore persists orders as a JSON array under a fixed key in the local
// key-value database. Every operation is a read-modify-write of the whole
// list, serialized by the mutex within this process. Two processes sharing
// the same data file could still race; that mirrors the multi-tab race the
// hosted deployment accepted.
type LocalStore struct {
	mu sync.Mutex
	kv *localdata.KV
}

func NewLocalStore(kv *localdata.KV) *LocalStore {
	return &LocalStore{kv: kv}
}

func (s *LocalStore) Submit(customer Customer, items []cart.Item) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return Order{}, err
	}

	order := NewOrder(customer, items)
	order.ID = maxID(all) + 1
	all = append(all, order)

	if err := s.save(all); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (s *LocalStore) List() ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (s *LocalStore) UpdateStatus(id int, status Status) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return Order{}, err
	}

	for i := range all {
		if all[i].ID == id {
			all[i].Status = status
			if err := s.save(all); err != nil {
				return Order{}, err
			}
			return all[i], nil
		}
	}
	return Order{}, error_messages.ErrNotExists
}

func (s *LocalStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			return s.save(all)
		}
	}
	return error_messages.ErrNotExists
}

func (s *LocalStore) DeleteByStatus(status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, order := range all {
		if order.Status != status {
			kept = append(kept, order)
		}
	}
	return s.save(kept)
}

func (s *LocalStore) load() ([]Order, error) {
	value, err := s.kv.Get(localdata.OrdersKey)
	if errors.Is(err, error_messages.ErrNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var all []Order
	if err := json.Unmarshal([]byte(value), &all); err != nil {
		return nil, fmt.Errorf("decode stored orders: %w", err)
	}
	return all, nil
}

func (s *LocalStore) save(all []Order) error {
	if all == nil {
		all = []Order{}
	}
	value, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode stored orders: %w", err)
	}
	return s.kv.Put(localdata.OrdersKey, string(value))
}

func maxID(all []Order) int {
	max := 0
	for _, order := range all {
		if order.ID > max {
			max = order.ID
		}
	}
	return max
}

package cart

import "sync"

// Registry maps session ids to their carts. Carts are created on first use
// and only ever touched by requests carrying the owning session cookie.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Get returns the cart owned by session_id, creating it if needed.
func (r *Registry) Get(session_id string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[session_id]
	if !ok {
		c = New()
		r.carts[session_id] = c
	}
	return c
}

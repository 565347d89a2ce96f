// Package session keeps one cart per browser session and serialises access to it.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/angelmondragon/menucart/internal/cart"
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

type entry struct {
	mu   sync.Mutex
	cart *cart.Cart
}

// Registry holds the carts of live sessions in memory.
type Registry struct {
	opts cart.Options

	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
}

func NewRegistry(opts cart.Options) (*Registry, error) {
	// Building one cart up front surfaces bad options at startup.
	if _, err := cart.New(opts); err != nil {
		return nil, err
	}
	return &Registry{
		opts:     opts,
		sessions: make(map[uuid.UUID]*entry),
	}, nil
}

// Create opens a session with an empty cart.
func (r *Registry) Create() (uuid.UUID, error) {
	c, err := cart.New(r.opts)
	if err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()

	r.mu.Lock()
	r.sessions[id] = &entry{cart: c}
	r.mu.Unlock()
	return id, nil
}

// With runs fn while holding the session's lock, so each cart has exactly one
// writer at a time. fn must not retain the cart.
func (r *Registry) With(id uuid.UUID, fn func(*cart.Cart) error) error {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "cart %s not found", id).
			WithDetails(map[string]any{"cart_id": id.String()})
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.cart)
}

func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "cart %s not found", id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

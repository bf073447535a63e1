package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Jiayao2006/AIVest/internal/domain"
)

// clientRepository implements domain.ClientRepository
type clientRepository struct {
	mu      sync.RWMutex
	clients []*domain.Client
}

// NewClientRepository creates a new in-memory client repository
func NewClientRepository() domain.ClientRepository {
	return &clientRepository{clients: make([]*domain.Client, 0)}
}

// GetByID retrieves a client by its ID
func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrClientNotFound)
	}
	return r.clients[idx].Clone(), nil
}

// List retrieves all clients in insertion order
func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c.Clone())
	}
	return out, nil
}

// Create appends a new client, assigning the next identifier when none is set
func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client.ID == "" {
		ids := make([]string, 0, len(r.clients))
		for _, c := range r.clients {
			ids = append(ids, c.ID)
		}
		client.ID = domain.NextClientID(ids)
	} else if r.indexOf(client.ID) >= 0 {
		return fmt.Errorf("client %s: %w", client.ID, domain.ErrAlreadyExists)
	}

	r.clients = append(r.clients, client.Clone())
	return nil
}

// Delete removes a client by its ID and returns the removed record
func (r *clientRepository) Delete(ctx context.Context, id string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrClientNotFound)
	}

	removed := r.clients[idx]
	r.clients = append(r.clients[:idx:idx], r.clients[idx+1:]...)
	return removed, nil
}

// indexOf must be called with mu held
func (r *clientRepository) indexOf(id string) int {
	for i, c := range r.clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}

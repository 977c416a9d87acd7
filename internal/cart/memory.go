package cart

import (
	"context"
	"sync"
	"time"

	"tujjor/internal/domain"
)

// MemoryStore in-memory хранилище корзин с ленивым истечением сессий
type MemoryStore struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]memoryEntry
}

type memoryEntry struct {
	cart      domain.Cart
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl: ttl,
		m:   make(map[string]memoryEntry),
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Cart, error) {
	s.mu.RLock()
	e, ok := s.m[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	// return copy
	cp := e.cart
	cp.Lines = append([]domain.CartLine(nil), e.cart.Lines...)
	return &cp, nil
}

func (s *MemoryStore) Put(ctx context.Context, c *domain.Cart) error {
	cp := *c
	cp.Lines = append([]domain.CartLine(nil), c.Lines...)
	s.mu.Lock()
	s.m[c.ID] = memoryEntry{cart: cp, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
	return nil
}

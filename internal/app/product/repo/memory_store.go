package repo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domain "github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/clock"
)

// MemoryStore keeps products in process memory, in insertion order.
// It implements contracts.ProductStore and contracts.ReadModel.
type MemoryStore struct {
	mu    sync.RWMutex
	clock clock.Clock
	byID  map[string]*domain.Product
	order []string
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock: clk,
		byID:  make(map[string]*domain.Product),
	}
}

func (s *MemoryStore) Insert(_ context.Context, fields domain.Fields) (*domain.Product, error) {
	p := domain.NewProduct(uuid.New().String(), fields, s.clock.Now())

	s.mu.Lock()
	s.byID[p.ID()] = p
	s.order = append(s.order, p.ID())
	s.mu.Unlock()

	return copyProduct(p), nil
}

func (s *MemoryStore) Update(_ context.Context, productID string, patch domain.Patch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.ApplyPatch(patch)
	p.Changes().Clear()
	return copyProduct(p), nil
}

func (s *MemoryStore) Delete(_ context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[productID]; !ok {
		return nil
	}
	delete(s.byID, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) GetProduct(_ context.Context, productID string) (*dto.ProductDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return dto.FromProduct(p), nil
}

func (s *MemoryStore) ListProducts(_ context.Context) ([]*dto.ProductDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*dto.ProductDTO, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, dto.FromProduct(s.byID[id]))
	}
	return out, nil
}

// Len returns the number of stored products.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func copyProduct(p *domain.Product) *domain.Product {
	return domain.ReconstructProduct(p.ID(), p.Fields(), p.CreatedAt())
}

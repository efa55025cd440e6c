package repo

import (
	"context"

	"github.com/pkg/errors"

	domain "github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
)

// UnavailableStore stands in for a backend that could not be opened at
// startup. Every call fails with the original cause, which the
// application layer logs and maps to its coarse errors.
type UnavailableStore struct {
	Cause error
}

func (s *UnavailableStore) err() error {
	if s.Cause == nil {
		return errors.New("store unavailable")
	}
	return errors.Wrap(s.Cause, "store unavailable")
}

func (s *UnavailableStore) Insert(context.Context, domain.Fields) (*domain.Product, error) {
	return nil, s.err()
}

func (s *UnavailableStore) Update(context.Context, string, domain.Patch) (*domain.Product, error) {
	return nil, s.err()
}

func (s *UnavailableStore) Delete(context.Context, string) error {
	return s.err()
}

func (s *UnavailableStore) GetProduct(context.Context, string) (*dto.ProductDTO, error) {
	return nil, s.err()
}

func (s *UnavailableStore) ListProducts(context.Context) ([]*dto.ProductDTO, error) {
	return nil, s.err()
}

package contracts

import (
	"context"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
)

type ReadModel interface {
	// GetProduct returns domain.ErrNotFound when no product matches.
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	// ListProducts returns every product in the store's natural order.
	ListProducts(ctx context.Context) ([]*dto.ProductDTO, error)
}

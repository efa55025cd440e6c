package contracts

import (
	"context"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
)

// ProductStore is the write-side contract every backend implements.
// Implementations assign identifiers and return domain.ErrNotFound when a
// targeted product does not exist.
type ProductStore interface {
	// Insert persists a new product and returns it with its assigned ID.
	Insert(ctx context.Context, fields domain.Fields) (*domain.Product, error)

	// Update applies the patch to the product with the given ID in one
	// atomic store operation and returns the result.
	Update(ctx context.Context, productID string, patch domain.Patch) (*domain.Product, error)

	// Delete removes the product. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, productID string) error
}

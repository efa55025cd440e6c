package update_product

import (
	"context"
	"errors"

	contracts "github.com/murkotick/product-catalog-graphql/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
)

// Request represents the update product request (partial updates allowed).
type Request struct {
	ProductID string
	Patch     domain.Patch
}

// Interactor applies partial updates through the store in one atomic step.
type Interactor struct {
	Store  contracts.ProductStore
	Logger logging.Logger
}

func NewInteractor(store contracts.ProductStore, logger logging.Logger) *Interactor {
	return &Interactor{
		Store:  store,
		Logger: logger,
	}
}

// Execute returns the product as it is after the update.
// An unknown id yields domain.ErrNotFound and never creates a record.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.ProductDTO, error) {
	product, err := it.Store.Update(ctx, req.ProductID, req.Patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		it.Logger.WithFields(logging.Fields{
			"operation":  "update_product",
			"product_id": req.ProductID,
		}).WithError(err).Error("product update failed")
		return nil, domain.ErrUpdateFailed
	}
	return dto.FromProduct(product), nil
}

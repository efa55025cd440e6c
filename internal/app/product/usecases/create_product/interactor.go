package create_product

import (
	"context"

	contracts "github.com/murkotick/product-catalog-graphql/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
)

// Request is the application-level create-product request.
// Every attribute is optional; omitted ones are stored as absent.
type Request struct {
	Title       *string
	Price       *float64
	Description *string
	Category    *string
	Image       *string
}

// Interactor implements the create-product usecase.
type Interactor struct {
	Store  contracts.ProductStore
	Logger logging.Logger
}

// NewInteractor constructs the interactor.
func NewInteractor(store contracts.ProductStore, logger logging.Logger) *Interactor {
	return &Interactor{
		Store:  store,
		Logger: logger,
	}
}

// Execute persists a new product and returns it with its assigned id.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.ProductDTO, error) {
	product, err := it.Store.Insert(ctx, domain.Fields{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		it.Logger.WithField("operation", "create_product").WithError(err).Error("product create failed")
		return nil, domain.ErrCreateFailed
	}
	return dto.FromProduct(product), nil
}

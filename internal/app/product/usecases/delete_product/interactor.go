package delete_product

import (
	"context"
	"fmt"

	contracts "github.com/murkotick/product-catalog-graphql/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
)

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

// Execute removes the product and returns the confirmation message.
// Deleting an id that does not exist still succeeds.
func (it *Interactor) Execute(ctx context.Context, productID string) (string, error) {
	if err := it.Store.Delete(ctx, productID); err != nil {
		it.Logger.WithFields(logging.Fields{
			"operation":  "delete_product",
			"product_id": productID,
		}).WithError(err).Error("product delete failed")
		return "", domain.ErrDeleteFailed
	}
	return ConfirmationMessage(productID), nil
}

// ConfirmationMessage is the text returned after a successful delete.
func ConfirmationMessage(productID string) string {
	return fmt.Sprintf("Product with ID %s deleted successfully.", productID)
}

package get_product

import (
	"context"
	"errors"

	contracts "github.com/murkotick/product-catalog-graphql/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
)

type Handler struct {
	readModel contracts.ReadModel
	logger    logging.Logger
}

func NewHandler(r contracts.ReadModel, logger logging.Logger) *Handler {
	return &Handler{readModel: r, logger: logger}
}

// Execute returns the product, or nil without error when nothing matches.
// Store failures are logged and reported as domain.ErrLookupFailed.
func (h *Handler) Execute(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	out, err := h.readModel.GetProduct(ctx, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		h.logger.WithFields(logging.Fields{
			"operation":  "get_product",
			"product_id": productID,
		}).WithError(err).Error("product lookup failed")
		return nil, domain.ErrLookupFailed
	}
	return out, nil
}

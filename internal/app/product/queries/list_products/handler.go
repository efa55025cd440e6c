package list_products

import (
	"context"

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

func (h *Handler) Execute(ctx context.Context) ([]*dto.ProductDTO, error) {
	items, err := h.readModel.ListProducts(ctx)
	if err != nil {
		h.logger.WithField("operation", "list_products").WithError(err).Error("product listing failed")
		return nil, domain.ErrListFailed
	}
	return items, nil
}

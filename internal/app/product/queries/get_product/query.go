package get_product

import (
	"context"
	"strings"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
	"github.com/murkotick/product-catalog-graphql/internal/models/m_product"
)

// SpannerGetProductQuery reads a single product row from Spanner.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct returns domain.ErrNotFound when no row has the given ID.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ` + strings.Join(m_product.SelectColumns, ", ") + `
		      FROM products
		      WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "spanner: get product %s", productID)
	}

	r, err := m_product.ScanRow(row)
	if err != nil {
		return nil, errors.Wrap(err, "spanner: scan product")
	}

	return &dto.ProductDTO{
		ProductID:   r.ProductID,
		Title:       m_product.StringPtr(r.Title),
		Price:       m_product.FloatPtr(r.Price),
		Description: m_product.StringPtr(r.Description),
		Category:    m_product.StringPtr(r.Category),
		Image:       m_product.StringPtr(r.Image),
	}, nil
}

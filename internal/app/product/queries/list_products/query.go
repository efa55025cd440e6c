package list_products

import (
	"context"
	"strings"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
	"github.com/murkotick/product-catalog-graphql/internal/models/m_product"
)

// SpannerListProductsQuery lists every product in insertion order.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ` + strings.Join(m_product.SelectColumns, ", ") + `
		      FROM products
		      ORDER BY created_at ASC, product_id ASC`,
	}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "spanner: list products")
		}

		r, err := m_product.ScanRow(row)
		if err != nil {
			return nil, errors.Wrap(err, "spanner: scan product")
		}

		out = append(out, &dto.ProductDTO{
			ProductID:   r.ProductID,
			Title:       m_product.StringPtr(r.Title),
			Price:       m_product.FloatPtr(r.Price),
			Description: m_product.StringPtr(r.Description),
			Category:    m_product.StringPtr(r.Category),
			Image:       m_product.StringPtr(r.Image),
		})
	}
}

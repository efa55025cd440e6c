package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"

	domain "github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/models/m_product"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/clock"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/committer"
)

// SpannerStore implements contracts.ProductStore on Cloud Spanner.
// Mutations come from ProductRepo and are applied through the committer.
type SpannerStore struct {
	repo      *ProductRepo
	committer *committer.Adapter
	clock     clock.Clock
}

func NewSpannerStore(client *spanner.Client, clk clock.Clock) *SpannerStore {
	return &SpannerStore{
		repo:      NewProductRepo(),
		committer: committer.NewAdapter(client),
		clock:     clk,
	}
}

// Insert assigns a UUID and writes the row.
func (s *SpannerStore) Insert(ctx context.Context, fields domain.Fields) (*domain.Product, error) {
	p := domain.NewProduct(uuid.New().String(), fields, s.clock.Now())

	if err := s.committer.Apply(ctx, committer.NewPlan(s.repo.InsertMut(p))); err != nil {
		return nil, errors.Wrap(err, "spanner: insert product")
	}
	return p, nil
}

// Update reads the row and writes the dirty columns in one read-write
// transaction, so the existence check and the write cannot interleave
// with another update of the same row.
func (s *SpannerStore) Update(ctx context.Context, productID string, patch domain.Patch) (*domain.Product, error) {
	var (
		out     *domain.Product
		missing bool
	)

	err := s.committer.Transact(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) (*committer.Plan, error) {
		missing = false
		row, err := tx.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.SelectColumns)
		if spanner.ErrCode(err) == codes.NotFound {
			missing = true
			return nil, domain.ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		r, err := m_product.ScanRow(row)
		if err != nil {
			return nil, err
		}

		p := reconstructFromRow(r)
		p.ApplyPatch(patch)
		out = p
		return committer.NewPlan(s.repo.UpdateMut(p)), nil
	})
	if missing {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "spanner: update product %s", productID)
	}

	out.Changes().Clear()
	return out, nil
}

// Delete removes the row; a missing row is not an error.
func (s *SpannerStore) Delete(ctx context.Context, productID string) error {
	if err := s.committer.Apply(ctx, committer.NewPlan(s.repo.DeleteMut(productID))); err != nil {
		return errors.Wrapf(err, "spanner: delete product %s", productID)
	}
	return nil
}

func reconstructFromRow(r *m_product.Row) *domain.Product {
	return domain.ReconstructProduct(r.ProductID, domain.Fields{
		Title:       m_product.StringPtr(r.Title),
		Price:       m_product.FloatPtr(r.Price),
		Description: m_product.StringPtr(r.Description),
		Category:    m_product.StringPtr(r.Category),
		Image:       m_product.StringPtr(r.Image),
	}, r.CreatedAt)
}

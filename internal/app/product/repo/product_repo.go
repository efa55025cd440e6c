package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/models/m_product"
)

// ProductRepo builds Spanner mutations for products but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	return m_product.BuildInsertMap(p.ID(), p.Title(), p.Price(),
		p.Description(), p.Category(), p.Image(), p.CreatedAt().UTC())
}

// buildUpdateValues returns only the columns the ChangeTracker marked dirty.
func buildUpdateValues(p *domain.Product) map[string]interface{} {
	updates := map[string]interface{}{}
	if p == nil || !p.Changes().HasChanges() {
		return updates
	}

	if p.Changes().Dirty(domain.FieldTitle) {
		updates[m_product.ColTitle] = m_product.NullString(p.Title())
	}
	if p.Changes().Dirty(domain.FieldPrice) {
		updates[m_product.ColPrice] = m_product.NullFloat(p.Price())
	}
	if p.Changes().Dirty(domain.FieldDescription) {
		updates[m_product.ColDescription] = m_product.NullString(p.Description())
	}
	if p.Changes().Dirty(domain.FieldCategory) {
		updates[m_product.ColCategory] = m_product.NullString(p.Category())
	}
	if p.Changes().Dirty(domain.FieldImage) {
		updates[m_product.ColImage] = m_product.NullString(p.Image())
	}
	return updates
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation for the dirty fields, or nil when
// nothing changed.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	updates := buildUpdateValues(p)
	if len(updates) == 0 {
		return nil
	}
	return m_product.UpdateMutation(p.ID(), updates)
}

// DeleteMut builds a hard delete for the product row.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return m_product.DeleteMutation(productID)
}

package dto

import "github.com/murkotick/product-catalog-graphql/internal/app/product/domain"

// ProductDTO is the read-side shape of a product handed to transports.
// Optional attributes stay pointers: nil means absent or null in the store.
type ProductDTO struct {
	ProductID   string
	Title       *string
	Price       *float64
	Description *string
	Category    *string
	Image       *string
}

// FromProduct maps a domain product to its DTO.
func FromProduct(p *domain.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	f := p.Fields()
	return &ProductDTO{
		ProductID:   p.ID(),
		Title:       f.Title,
		Price:       f.Price,
		Description: f.Description,
		Category:    f.Category,
		Image:       f.Image,
	}
}

package product

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/dto"
)

// productResolver serves the Product type. Method names follow the wire
// field names; graphql-go matches "_id" to ID.
type productResolver struct {
	p *dto.ProductDTO
}

func newProductResolver(p *dto.ProductDTO) *productResolver {
	if p == nil {
		return nil
	}
	return &productResolver{p: p}
}

func (r *productResolver) ID() graphql.ID {
	return graphql.ID(r.p.ProductID)
}

func (r *productResolver) Titulo() *string {
	return r.p.Title
}

func (r *productResolver) Precio() *float64 {
	return r.p.Price
}

func (r *productResolver) Descripcion() *string {
	return r.p.Description
}

func (r *productResolver) Categoria() *string {
	return r.p.Category
}

func (r *productResolver) Imagen() *string {
	return r.p.Image
}

package product

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/create_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/update_product"
)

type idArgs struct {
	ID graphql.ID
}

type createProductArgs struct {
	Titulo      *string
	Precio      *float64
	Descripcion *string
	Categoria   *string
	Imagen      *string
}

// updateProductArgs uses the Null* types so an explicit null can be told
// apart from an omitted argument.
type updateProductArgs struct {
	ID          graphql.ID
	Titulo      graphql.NullString
	Precio      graphql.NullFloat
	Descripcion graphql.NullString
	Categoria   graphql.NullString
	Imagen      graphql.NullString
}

func mapCreateProductRequest(args createProductArgs) create_product.Request {
	return create_product.Request{
		Title:       args.Titulo,
		Price:       args.Precio,
		Description: args.Descripcion,
		Category:    args.Categoria,
		Image:       args.Imagen,
	}
}

func mapUpdateProductRequest(args updateProductArgs) update_product.Request {
	return update_product.Request{
		ProductID: string(args.ID),
		Patch: domain.Patch{
			Title:       optionalString(args.Titulo),
			Price:       domain.Optional[float64]{Set: args.Precio.Set, Value: args.Precio.Value},
			Description: optionalString(args.Descripcion),
			Category:    optionalString(args.Categoria),
			Image:       optionalString(args.Imagen),
		},
	}
}

func optionalString(v graphql.NullString) domain.Optional[string] {
	return domain.Optional[string]{Set: v.Set, Value: v.Value}
}

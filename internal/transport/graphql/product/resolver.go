package product

import (
	"context"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/queries/get_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/queries/list_products"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/create_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/delete_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/update_product"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Create *create_product.Interactor
	Update *update_product.Interactor
	Delete *delete_product.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get  *get_product.Handler
	List *list_products.Handler
}

// OperationObserver records the outcome of each root field.
type OperationObserver interface {
	ObserveOperation(operation string, err error)
}

// Resolver is the root resolver for both Query and Mutation.
// It maps GraphQL arguments to application requests and delegates.
type Resolver struct {
	commands Commands
	queries  Queries
	observer OperationObserver
}

func NewResolver(cmd Commands, qry Queries, observer OperationObserver) *Resolver {
	return &Resolver{commands: cmd, queries: qry, observer: observer}
}

func (r *Resolver) OneProduct(ctx context.Context, args idArgs) (*productResolver, error) {
	out, err := r.queries.Get.Execute(ctx, string(args.ID))
	r.observe("oneProduct", err)
	if err != nil {
		return nil, mapError(err)
	}
	return newProductResolver(out), nil
}

func (r *Resolver) AllProducts(ctx context.Context) (*[]*productResolver, error) {
	items, err := r.queries.List.Execute(ctx)
	r.observe("allProducts", err)
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]*productResolver, 0, len(items))
	for _, it := range items {
		out = append(out, newProductResolver(it))
	}
	return &out, nil
}

func (r *Resolver) CrearProducto(ctx context.Context, args createProductArgs) (*productResolver, error) {
	out, err := r.commands.Create.Execute(ctx, mapCreateProductRequest(args))
	r.observe("crearProducto", err)
	if err != nil {
		return nil, mapError(err)
	}
	return newProductResolver(out), nil
}

func (r *Resolver) UpdateProduct(ctx context.Context, args updateProductArgs) (*productResolver, error) {
	out, err := r.commands.Update.Execute(ctx, mapUpdateProductRequest(args))
	r.observe("updateProduct", err)
	if err != nil {
		return nil, mapError(err)
	}
	return newProductResolver(out), nil
}

func (r *Resolver) DeleteProductByID(ctx context.Context, args idArgs) (*string, error) {
	msg, err := r.commands.Delete.Execute(ctx, string(args.ID))
	r.observe("deleteProductById", err)
	if err != nil {
		return nil, mapError(err)
	}
	return &msg, nil
}

func (r *Resolver) observe(operation string, err error) {
	if r.observer != nil {
		r.observer.ObserveOperation(operation, err)
	}
}

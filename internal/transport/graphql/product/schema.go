package product

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var SchemaSDL string

// NewSchema parses the catalog SDL and binds it to the resolver.
// It panics if the resolver does not match the SDL.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(SchemaSDL, r)
}

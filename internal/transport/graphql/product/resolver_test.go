package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/product-catalog-graphql/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/domain"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/queries/get_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/queries/list_products"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/repo"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/create_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/delete_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/update_product"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/clock"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
)

type productJSON struct {
	ID          string   `json:"_id"`
	Titulo      *string  `json:"titulo"`
	Precio      *float64 `json:"precio"`
	Descripcion *string  `json:"descripcion"`
	Categoria   *string  `json:"categoria"`
	Imagen      *string  `json:"imagen"`
}

const productFields = `_id titulo precio descripcion categoria imagen`

type recordingObserver struct {
	calls map[string]int
}

func (o *recordingObserver) ObserveOperation(operation string, err error) {
	key := operation + ":ok"
	if err != nil {
		key = operation + ":error"
	}
	o.calls[key]++
}

type stores struct {
	write contracts.ProductStore
	read  contracts.ReadModel
}

func newSchema(t *testing.T, s stores, logger logging.Logger, obs OperationObserver) *graphql.Schema {
	t.Helper()
	cmds := Commands{
		Create: create_product.NewInteractor(s.write, logger),
		Update: update_product.NewInteractor(s.write, logger),
		Delete: delete_product.NewInteractor(s.write, logger),
	}
	qrys := Queries{
		Get:  get_product.NewHandler(s.read, logger),
		List: list_products.NewHandler(s.read, logger),
	}
	return NewSchema(NewResolver(cmds, qrys, obs))
}

func memorySchema(t *testing.T) *graphql.Schema {
	t.Helper()
	mem := repo.NewMemoryStore(clock.RealClock{})
	return newSchema(t, stores{write: mem, read: mem}, logging.Discard(), nil)
}

func exec(t *testing.T, schema *graphql.Schema, query string, vars map[string]interface{}) *graphql.Response {
	t.Helper()
	return schema.Exec(context.Background(), query, "", vars)
}

func decode[T any](t *testing.T, resp *graphql.Response) T {
	t.Helper()
	require.Empty(t, resp.Errors)
	var out T
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	return out
}

func createChair(t *testing.T, schema *graphql.Schema) productJSON {
	t.Helper()
	resp := exec(t, schema, `mutation {
		crearProducto(titulo: "Chair", precio: 49.99, descripcion: "Wooden", categoria: "furniture", imagen: "chair.png") { `+productFields+` }
	}`, nil)
	out := decode[struct {
		CrearProducto productJSON `json:"crearProducto"`
	}](t, resp)
	return out.CrearProducto
}

func TestCreateThenReadBack(t *testing.T) {
	schema := memorySchema(t)
	created := createChair(t, schema)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Chair", *created.Titulo)
	assert.Equal(t, 49.99, *created.Precio)

	one := decode[struct {
		OneProduct *productJSON `json:"oneProduct"`
	}](t, exec(t, schema, `query($id: ID!) { oneProduct(_id: $id) { `+productFields+` } }`,
		map[string]interface{}{"id": created.ID}))
	require.NotNil(t, one.OneProduct)
	assert.Equal(t, created, *one.OneProduct)

	all := decode[struct {
		AllProducts []productJSON `json:"allProducts"`
	}](t, exec(t, schema, `{ allProducts { `+productFields+` } }`, nil))
	require.Len(t, all.AllProducts, 1)
	assert.Equal(t, created, all.AllProducts[0])
}

func TestCreateWithoutArguments(t *testing.T) {
	schema := memorySchema(t)

	resp := exec(t, schema, `mutation { crearProducto { `+productFields+` } }`, nil)
	out := decode[struct {
		CrearProducto productJSON `json:"crearProducto"`
	}](t, resp)
	assert.NotEmpty(t, out.CrearProducto.ID)
	assert.Nil(t, out.CrearProducto.Titulo)
	assert.Nil(t, out.CrearProducto.Precio)
}

func TestAllProductsEmpty(t *testing.T) {
	resp := exec(t, memorySchema(t), `{ allProducts { _id } }`, nil)
	assert.JSONEq(t, `{"allProducts":[]}`, string(resp.Data))
}

func TestOneProductUnknownIsNull(t *testing.T) {
	resp := exec(t, memorySchema(t), `{ oneProduct(_id: "nope") { _id } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"oneProduct":null}`, string(resp.Data))
}

func TestDeleteThenLookup(t *testing.T) {
	schema := memorySchema(t)
	created := createChair(t, schema)

	del := decode[struct {
		DeleteProductByID string `json:"deleteProductById"`
	}](t, exec(t, schema, `mutation($id: ID!) { deleteProductById(_id: $id) }`,
		map[string]interface{}{"id": created.ID}))
	assert.Equal(t, "Product with ID "+created.ID+" deleted successfully.", del.DeleteProductByID)

	resp := exec(t, schema, `query($id: ID!) { oneProduct(_id: $id) { _id } }`, map[string]interface{}{"id": created.ID})
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"oneProduct":null}`, string(resp.Data))

	// Deleting again still reports success.
	resp = exec(t, schema, `mutation($id: ID!) { deleteProductById(_id: $id) }`, map[string]interface{}{"id": created.ID})
	assert.Empty(t, resp.Errors)
}

func TestUpdateKeepsOmittedFields(t *testing.T) {
	schema := memorySchema(t)
	created := createChair(t, schema)

	out := decode[struct {
		UpdateProduct productJSON `json:"updateProduct"`
	}](t, exec(t, schema, `mutation($id: ID!) { updateProduct(_id: $id, precio: 39.5) { `+productFields+` } }`,
		map[string]interface{}{"id": created.ID}))

	assert.Equal(t, created.ID, out.UpdateProduct.ID)
	assert.Equal(t, 39.5, *out.UpdateProduct.Precio)
	assert.Equal(t, "Chair", *out.UpdateProduct.Titulo)
	assert.Equal(t, "Wooden", *out.UpdateProduct.Descripcion)
	assert.Equal(t, "furniture", *out.UpdateProduct.Categoria)
	assert.Equal(t, "chair.png", *out.UpdateProduct.Imagen)
}

func TestUpdateExplicitNullClears(t *testing.T) {
	schema := memorySchema(t)
	created := createChair(t, schema)

	out := decode[struct {
		UpdateProduct productJSON `json:"updateProduct"`
	}](t, exec(t, schema, `mutation($id: ID!) { updateProduct(_id: $id, categoria: null, imagen: null) { `+productFields+` } }`,
		map[string]interface{}{"id": created.ID}))

	assert.Nil(t, out.UpdateProduct.Categoria)
	assert.Nil(t, out.UpdateProduct.Imagen)
	assert.Equal(t, "Chair", *out.UpdateProduct.Titulo)
}

func TestUpdateUnknownIsNotFound(t *testing.T) {
	mem := repo.NewMemoryStore(clock.RealClock{})
	schema := newSchema(t, stores{write: mem, read: mem}, logging.Discard(), nil)

	resp := exec(t, schema, `mutation { updateProduct(_id: "ghost", titulo: "x") { _id } }`, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "product not found", resp.Errors[0].Message)
	assert.Equal(t, "NOT_FOUND", resp.Errors[0].Extensions["code"])
	assert.JSONEq(t, `{"updateProduct":null}`, string(resp.Data))
	assert.Equal(t, 0, mem.Len())
}

func TestStoreFailuresAreCoarse(t *testing.T) {
	logger, hook := test.NewNullLogger()
	down := &repo.UnavailableStore{Cause: errors.New("server selection timeout: 10.0.0.7:27017")}
	obs := &recordingObserver{calls: map[string]int{}}
	schema := newSchema(t, stores{write: down, read: down}, logger, obs)

	cases := []struct {
		query   string
		message string
		code    string
	}{
		{`{ oneProduct(_id: "a") { _id } }`, "product lookup failed", "LOOKUP_FAILED"},
		{`{ allProducts { _id } }`, "product listing failed", "LIST_FAILED"},
		{`mutation { crearProducto(titulo: "x") { _id } }`, "product create failed", "CREATE_FAILED"},
		{`mutation { updateProduct(_id: "a", titulo: "x") { _id } }`, "product update failed", "UPDATE_FAILED"},
		{`mutation { deleteProductById(_id: "a") }`, "product delete failed", "DELETE_FAILED"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			resp := exec(t, schema, tc.query, nil)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tc.message, resp.Errors[0].Message)
			assert.Equal(t, tc.code, resp.Errors[0].Extensions["code"])
			assert.NotContains(t, resp.Errors[0].Message, "10.0.0.7")
		})
	}

	// Every cause reached the log.
	assert.Len(t, hook.AllEntries(), len(cases))
	for _, e := range hook.AllEntries() {
		assert.Contains(t, e.Data["error"].(error).Error(), "10.0.0.7")
	}

	assert.Equal(t, 1, obs.calls["oneProduct:error"])
	assert.Equal(t, 1, obs.calls["deleteProductById:error"])
}

func TestObserverCountsSuccess(t *testing.T) {
	mem := repo.NewMemoryStore(clock.RealClock{})
	obs := &recordingObserver{calls: map[string]int{}}
	schema := newSchema(t, stores{write: mem, read: mem}, logging.Discard(), obs)

	createChair(t, schema)
	exec(t, schema, `{ allProducts { _id } }`, nil)

	assert.Equal(t, 1, obs.calls["crearProducto:ok"])
	assert.Equal(t, 1, obs.calls["allProducts:ok"])
}

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))

	err := mapError(errors.New("raw driver failure"))
	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "INTERNAL", ge.Code)
	assert.Equal(t, "internal error", ge.Message)

	// Context errors never escape the application layer; a bare one is internal.
	err = mapError(context.DeadlineExceeded)
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "INTERNAL", ge.Code)

	err = mapError(fmt.Errorf("resolver: %w", domain.ErrNotFound))
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "NOT_FOUND", ge.Code)
	assert.Equal(t, "product not found", ge.Message)
}

func TestCanceledContextIsCoarse(t *testing.T) {
	down := &repo.UnavailableStore{Cause: context.Canceled}
	schema := newSchema(t, stores{write: down, read: down}, logging.Discard(), nil)

	resp := schema.Exec(context.Background(), `{ allProducts { _id } }`, "", nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "LIST_FAILED", resp.Errors[0].Extensions["code"])
	assert.Equal(t, "product listing failed", resp.Errors[0].Message)
}

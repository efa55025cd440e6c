package http

import (
	"encoding/json"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/pkg/errors"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/catalog"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/middleware"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/monitoring"
)

// ServiceName is reported by /health.
const ServiceName = "product-catalog-graphql"

// allProductsQuery is the selection /productsFromGraphQL forwards.
const allProductsQuery = `{allProducts{titulo,precio,descripcion,categoria,imagen}}`

// Deps is everything the router needs. Executor defaults to running
// against Schema in-process.
type Deps struct {
	Schema          *graphql.Schema
	Executor        Executor
	Logger          logging.Logger
	Metrics         *monitoring.MetricsCollector
	StoreDriver     string
	GraphiQLEnabled bool
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(d Deps) *gin.Engine {
	if d.Executor == nil {
		d.Executor = NewSchemaExecutor(d.Schema)
	}

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(d.Logger))
	router.Use(middleware.RecoveryMiddleware(d.Logger))
	router.Use(middleware.CORSMiddleware())
	if d.Metrics != nil {
		router.Use(d.Metrics.MetricsMiddleware())
	}

	router.POST("/graphql", gin.WrapH(&relay.Handler{Schema: d.Schema}))
	if d.GraphiQLEnabled {
		router.GET("/graphql", gin.WrapH(playground.Handler("GraphiQL", "/graphql")))
	} else {
		router.GET("/graphql", func(c *gin.Context) {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
		})
	}

	router.GET("/products", staticProducts(d.Logger))
	router.GET("/productsFromGraphQL", productsFromGraphQL(d.Executor, d.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": ServiceName,
			"store":   d.StoreDriver,
		})
	})
	if d.Metrics != nil {
		router.GET("/metrics", d.Metrics.Handler())
	}

	return router
}

func staticProducts(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.Items()
		if err != nil {
			logger.WithError(err).Error("Static catalog unavailable")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": len(items), "status": http.StatusOK, "test": items})
	}
}

// productSummary mirrors the forwarded selection. Absent values render as null.
type productSummary struct {
	Titulo      *string  `json:"titulo"`
	Precio      *float64 `json:"precio"`
	Descripcion *string  `json:"descripcion"`
	Categoria   *string  `json:"categoria"`
	Imagen      *string  `json:"imagen"`
}

func productsFromGraphQL(exec Executor, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := fetchAllProducts(c, exec)
		if err != nil {
			logger.WithFields(logging.Fields{
				"operation":  "products_from_graphql",
				"request_id": c.GetString(middleware.RequestIDKey),
			}).WithError(err).Error("Failed to fetch products through GraphQL")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": len(products), "status": http.StatusOK, "products": products})
	}
}

func fetchAllProducts(c *gin.Context, exec Executor) ([]*productSummary, error) {
	data, err := exec.Execute(c.Request.Context(), allProductsQuery)
	if err != nil {
		return nil, err
	}

	var out struct {
		AllProducts *[]*productSummary `json:"allProducts"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "decode allProducts")
	}
	if out.AllProducts == nil {
		return nil, errors.New("allProducts missing from response")
	}
	return *out.AllProducts, nil
}

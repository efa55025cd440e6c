package config

import (
	"fmt"
	"time"

	"github.com/murkotick/product-catalog-graphql/internal/models/m_product"
)

// Store drivers
const (
	DriverMongo   = "mongo"
	DriverSpanner = "spanner"
	DriverMemory  = "memory"
)

// Config is the gateway configuration, read once at startup.
type Config struct {
	Port     string
	LogLevel string
	GinMode  string

	StoreDriver         string
	StoreConnectTimeout time.Duration

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	SpannerDatabase string

	GraphiQLEnabled bool

	// ProductsGraphQLURL switches /productsFromGraphQL to a real HTTP
	// round trip. Empty means the query runs in-process.
	ProductsGraphQLURL     string
	ProductsGraphQLTimeout time.Duration
}

// FromEnv builds the configuration from the process environment.
func FromEnv() Config {
	return Config{
		Port:     GetEnv("PORT", "3000"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
		GinMode:  GetEnv("GIN_MODE", "debug"),

		StoreDriver:         GetEnv("STORE_DRIVER", DriverMongo),
		StoreConnectTimeout: GetEnvDuration("STORE_CONNECT_TIMEOUT", 10*time.Second),

		MongoURI:        GetEnv("MONGO_URI", ""),
		MongoDatabase:   GetEnv("MONGO_DATABASE", "test"),
		MongoCollection: GetEnv("MONGO_COLLECTION", m_product.CollectionName),

		SpannerDatabase: GetEnv("SPANNER_DATABASE", ""),

		GraphiQLEnabled: GetEnvBool("GRAPHIQL_ENABLED", true),

		ProductsGraphQLURL:     GetEnv("PRODUCTS_GRAPHQL_URL", ""),
		ProductsGraphQLTimeout: GetEnvDuration("PRODUCTS_GRAPHQL_TIMEOUT", 10*time.Second),
	}
}

// Validate reports settings the selected driver cannot start without.
// Connection problems are not checked here; they are logged at startup.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for store driver %q", c.StoreDriver)
		}
	case DriverSpanner:
		if c.SpannerDatabase == "" {
			return fmt.Errorf("SPANNER_DATABASE is required for store driver %q", c.StoreDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	return nil
}

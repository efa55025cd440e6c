package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	contracts "github.com/murkotick/product-catalog-graphql/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/queries"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/clock"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/config"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
)

// Backend bundles the write and read sides of one store with the
// long-lived handle behind them.
type Backend struct {
	Driver    string
	Store     contracts.ProductStore
	ReadModel contracts.ReadModel
	Close     func(ctx context.Context) error
}

// Open connects the configured store once for the lifetime of the process.
// Connection failures are logged and never fatal: the returned backend
// then fails every operation instead.
func Open(ctx context.Context, cfg config.Config, clk clock.Clock, logger logging.Logger) *Backend {
	log := logger.WithField("store", cfg.StoreDriver)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		s := NewMemoryStore(clk)
		log.Info("Using in-memory product store")
		return &Backend{Driver: cfg.StoreDriver, Store: s, ReadModel: s, Close: noopClose}

	case config.DriverSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			log.WithError(err).Error("Failed to open Spanner client")
			return unavailable(cfg.StoreDriver, err)
		}
		log.WithField("database", cfg.SpannerDatabase).Info("Spanner client ready")
		return &Backend{
			Driver:    cfg.StoreDriver,
			Store:     NewSpannerStore(client, clk),
			ReadModel: queries.NewSpannerReadModel(client),
			Close: func(context.Context) error {
				client.Close()
				return nil
			},
		}

	case config.DriverMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.WithError(err).Error("Failed to create MongoDB client")
			return unavailable(cfg.StoreDriver, err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreConnectTimeout)
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			// The driver keeps reconnecting in the background.
			log.WithError(err).Error("MongoDB not reachable at startup")
		} else {
			log.WithField("database", cfg.MongoDatabase).Info("DB connected")
		}

		s := NewMongoStore(client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
		return &Backend{Driver: cfg.StoreDriver, Store: s, ReadModel: s, Close: client.Disconnect}
	}

	err := errors.Errorf("unknown store driver %q", cfg.StoreDriver)
	log.WithError(err).Error("No product store configured")
	return unavailable(cfg.StoreDriver, err)
}

func unavailable(driver string, cause error) *Backend {
	s := &UnavailableStore{Cause: cause}
	return &Backend{Driver: driver, Store: s, ReadModel: s, Close: noopClose}
}

func noopClose(context.Context) error { return nil }

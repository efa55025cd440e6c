package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/murkotick/product-catalog-graphql/internal/app/product/queries/get_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/queries/list_products"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/repo"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/create_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/delete_product"
	"github.com/murkotick/product-catalog-graphql/internal/app/product/usecases/update_product"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/clock"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/config"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/logging"
	"github.com/murkotick/product-catalog-graphql/internal/pkg/monitoring"
	gqlproduct "github.com/murkotick/product-catalog-graphql/internal/transport/graphql/product"
	httptransport "github.com/murkotick/product-catalog-graphql/internal/transport/http"
)

func main() {
	bootLogger := logging.NewLogger(logging.InfoLevel)
	config.LoadEnv(bootLogger)

	cfg := config.FromEnv()
	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		// Not fatal: the store opens as unavailable and every operation fails.
		logger.WithError(err).Error("Invalid store configuration")
	}
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("Server exited with error")
		os.Exit(1)
	}
}

func run(cfg config.Config, logger logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Opened once; a failed connection is logged and the server still starts.
	backend := repo.Open(ctx, cfg, clock.RealClock{}, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := backend.Close(closeCtx); err != nil {
			logger.WithError(err).Warn("Failed to close product store")
		}
	}()

	metrics := monitoring.NewMetricsCollector()

	// CQRS wiring
	cmds := gqlproduct.Commands{
		Create: create_product.NewInteractor(backend.Store, logger),
		Update: update_product.NewInteractor(backend.Store, logger),
		Delete: delete_product.NewInteractor(backend.Store, logger),
	}
	qrys := gqlproduct.Queries{
		Get:  get_product.NewHandler(backend.ReadModel, logger),
		List: list_products.NewHandler(backend.ReadModel, logger),
	}
	schema := gqlproduct.NewSchema(gqlproduct.NewResolver(cmds, qrys, metrics))

	deps := httptransport.Deps{
		Schema:          schema,
		Logger:          logger,
		Metrics:         metrics,
		StoreDriver:     backend.Driver,
		GraphiQLEnabled: cfg.GraphiQLEnabled,
	}
	if cfg.ProductsGraphQLURL != "" {
		deps.Executor = httptransport.NewRemoteExecutor(cfg.ProductsGraphQLURL, cfg.ProductsGraphQLTimeout)
		logger.WithField("url", cfg.ProductsGraphQLURL).Info("productsFromGraphQL forwards over HTTP")
	}

	router := httptransport.NewRouter(deps)
	return httptransport.Start(ctx, httptransport.DefaultServerConfig(cfg.Port), router, logger)
}

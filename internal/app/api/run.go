package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	noleggioserver "github.com/cantinota/noleggio-api/go"

	authmemory "github.com/cantinota/noleggio-api/internal/domains/auth/adapters/memory"
	authpostgres "github.com/cantinota/noleggio-api/internal/domains/auth/adapters/persistence/postgres"
	"github.com/cantinota/noleggio-api/internal/domains/auth/adapters/token"
	authapp "github.com/cantinota/noleggio-api/internal/domains/auth/application"
	authports "github.com/cantinota/noleggio-api/internal/domains/auth/ports"

	customersmemory "github.com/cantinota/noleggio-api/internal/domains/customers/adapters/memory"
	customerspostgres "github.com/cantinota/noleggio-api/internal/domains/customers/adapters/persistence/postgres"
	customersrentals "github.com/cantinota/noleggio-api/internal/domains/customers/adapters/rentals"
	customersapp "github.com/cantinota/noleggio-api/internal/domains/customers/application"
	customersports "github.com/cantinota/noleggio-api/internal/domains/customers/ports"

	materialsmemory "github.com/cantinota/noleggio-api/internal/domains/materials/adapters/memory"
	materialspostgres "github.com/cantinota/noleggio-api/internal/domains/materials/adapters/persistence/postgres"
	materialsrentals "github.com/cantinota/noleggio-api/internal/domains/materials/adapters/rentals"
	materialsapp "github.com/cantinota/noleggio-api/internal/domains/materials/application"
	materialsports "github.com/cantinota/noleggio-api/internal/domains/materials/ports"

	orderscatalog "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/catalog"
	ordersdirectory "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/directory"
	ordersmemory "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/cantinota/noleggio-api/internal/domains/orders/application"
	ordersports "github.com/cantinota/noleggio-api/internal/domains/orders/ports"

	platformobservability "github.com/cantinota/noleggio-api/internal/platform/observability"
	platformpostgres "github.com/cantinota/noleggio-api/internal/platform/postgres"
)

// Run boots the rental admin HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "noleggio-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanupDB := platformpostgres.ConnectWithFallback(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()

	repos := buildRepositories(db)

	coreOrderService := ordersapp.NewService(
		repos.orders,
		orderscatalog.NewCatalog(repos.materials),
		ordersdirectory.NewDirectory(repos.customers),
	)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	materialService := materialsapp.NewService(repos.materials, materialsrentals.NewBook(repos.orders))
	customerService := customersapp.NewService(repos.customers, customersrentals.NewBook(repos.orders))

	tokens := token.NewJWT(cfg.JWTSecret, cfg.JWTTTL)
	authService := authapp.NewService(repos.admins, tokens)

	handlers := noleggioserver.ApiHandleFunctions{
		AuthAPI:     noleggioserver.NewAuthAPI(authService),
		CustomerAPI: noleggioserver.NewCustomerAPI(customerService),
		MaterialAPI: noleggioserver.NewMaterialAPI(materialService),
		OrderAPI:    noleggioserver.NewOrderAPI(orderService),
		ReportAPI:   noleggioserver.NewReportAPI(orderService),
	}

	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	router.Use(otelgin.Middleware(serviceName))
	noleggioserver.NewRouterWithGinEngine(router, handlers, noleggioserver.AuthMiddleware(tokens))

	addr := ":" + cfg.Port
	logger.Info("noleggio API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("noleggio API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type repositories struct {
	orders    ordersports.Repository
	materials materialsports.Repository
	customers customersports.Repository
	admins    authports.Repository
}

// buildRepositories wires postgres-backed adapters when a connection exists
// and in-memory ones otherwise.
func buildRepositories(db *gorm.DB) repositories {
	if db == nil {
		return repositories{
			orders:    ordersmemory.NewRepository(),
			materials: materialsmemory.NewRepository(),
			customers: customersmemory.NewRepository(),
			admins:    authmemory.NewRepository(),
		}
	}
	return repositories{
		orders:    orderspostgres.NewRepository(db),
		materials: materialspostgres.NewRepository(db),
		customers: customerspostgres.NewRepository(db),
		admins:    authpostgres.NewRepository(db),
	}
}

// corsConfig allows the configured origins, or any origin when none are
// configured. AllowOriginFunc keeps credentialed requests working in the
// wildcard case, where a literal * would be rejected.
func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	if len(origins) == 0 {
		config.AllowOriginFunc = func(string) bool { return true }
		return config
	}
	config.AllowOrigins = origins
	return config
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Bodega-api/internal/application/analytics"
	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/memory"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Bodega-api/internal/interfaces/http"
	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

// stores agrupa los adaptadores de persistencia, sea cual sea el driver.
type stores struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
	txRepo        repository.TransactionRepository
	analyticsRepo repository.AnalyticsRepository
	txRunner      inventory.TxRunner
	close         func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Stock.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := buildStores(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer st.close()

	processor := inventory.NewTransactionProcessor(
		st.txRunner, st.productRepo, st.warehouseRepo, st.userRepo, st.txRepo,
		cfg.Stock.AllowBackorders,
	)
	resolver := inventory.NewResolver(st.productRepo, st.warehouseRepo, st.userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(st.analyticsRepo, resolver)
	warehouseUC := usecase.NewWarehouseUseCase(st.warehouseRepo)
	productUC := usecase.NewProductUseCase(st.productRepo, st.categoryRepo)
	authUC := auth.NewAuthUseCase(st.userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Processor:   processor,
		DashboardUC: dashboardUC,
		WarehouseUC: warehouseUC,
		ProductUC:   productUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// buildStores arma los adaptadores según STORE_DRIVER: postgres (default) o
// memory (estado efímero, para desarrollo local).
func buildStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.Stock.Driver == "memory" {
		store := memory.NewStore(time.Duration(cfg.Stock.LockTimeoutMS) * time.Millisecond)
		return &stores{
			productRepo:   memory.NewProductRepository(store),
			categoryRepo:  memory.NewCategoryRepository(store),
			warehouseRepo: memory.NewWarehouseRepository(store),
			userRepo:      memory.NewUserRepository(store),
			txRepo:        memory.NewTransactionRepository(store),
			analyticsRepo: memory.NewAnalyticsRepository(store),
			txRunner:      memory.NewTxRunner(store),
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &stores{
		productRepo:   postgres.NewProductRepository(pool),
		categoryRepo:  postgres.NewCategoryRepository(pool),
		warehouseRepo: postgres.NewWarehouseRepository(pool),
		userRepo:      postgres.NewUserRepository(pool),
		txRepo:        postgres.NewTransactionRepository(pool),
		analyticsRepo: postgres.NewAnalyticsRepository(pool),
		txRunner:      postgres.NewTxRunner(pool, cfg.Stock.LockTimeoutMS),
		close:         pool.Close,
	}, nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/uhg-tech/aura-core/internal/application/auth"
	"github.com/uhg-tech/aura-core/internal/application/ledger"
	"github.com/uhg-tech/aura-core/internal/application/ports"
	"github.com/uhg-tech/aura-core/internal/application/usecase"
	infraai "github.com/uhg-tech/aura-core/internal/infrastructure/ai"
	"github.com/uhg-tech/aura-core/internal/infrastructure/postgres"
	"github.com/uhg-tech/aura-core/internal/infrastructure/storage"
	httpRouter "github.com/uhg-tech/aura-core/internal/interfaces/http"
	"github.com/uhg-tech/aura-core/pkg/config"
	"github.com/uhg-tech/aura-core/pkg/logger"
)

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
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := storage.NewStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("directorio de uploads")
	}

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	assetRepo := postgres.NewFixedAssetRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Selección del motor de extracción: Gemini con fallback sintético si hay
	// API key, motor sintético puro en caso contrario o si se fuerza por config.
	simulation := infraai.NewSimulationExtractor()
	var extractor ports.DocumentExtractor = simulation
	if cfg.AI.Mode != "simulation" && cfg.AI.APIKey != "" {
		extractor = infraai.NewGeminiExtractor(cfg.AI.APIKey, cfg.AI.Model, simulation)
	}
	log.Info().Str("engine", extractor.Engine()).Msg("motor de extracción activo")

	authUC := auth.NewAuthUseCase(userRepo, profileRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	scanUC := ledger.NewScanUseCase(companyRepo, documentRepo, extractor, txRunner)
	dashboardUC := usecase.NewDashboardUseCase(companyRepo, transactionRepo, inventoryRepo, assetRepo)
	taxFreeUC := usecase.NewTaxFreeUseCase()
	partnerUC := usecase.NewPartnerUseCase()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    25 * 1024 * 1024, // documentos escaneados pueden ser pesados
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.SentinelMiddleware(cfg.App.BannedIPs))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AURA Financial Core",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ScanUC:      scanUC,
		DashboardUC: dashboardUC,
		TaxFreeUC:   taxFreeUC,
		PartnerUC:   partnerUC,
		Store:       store,
		System: httpRouter.SystemInfo{
			System:   "UHG-Tech AURA",
			AIEngine: extractor.Engine(),
			Version:  cfg.App.Version,
		},
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

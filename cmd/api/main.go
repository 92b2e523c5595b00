package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/stoyanovb/gradina-api/internal/application/auth"
	"github.com/stoyanovb/gradina-api/internal/application/b2b"
	"github.com/stoyanovb/gradina-api/internal/application/notify"
	"github.com/stoyanovb/gradina-api/internal/application/stock"
	"github.com/stoyanovb/gradina-api/internal/application/usecase"
	"github.com/stoyanovb/gradina-api/internal/domain/pricing"
	infraai "github.com/stoyanovb/gradina-api/internal/infrastructure/ai"
	"github.com/stoyanovb/gradina-api/internal/infrastructure/email"
	infrapdf "github.com/stoyanovb/gradina-api/internal/infrastructure/pdf"
	"github.com/stoyanovb/gradina-api/internal/infrastructure/postgres"
	infraredis "github.com/stoyanovb/gradina-api/internal/infrastructure/redis"
	httpRouter "github.com/stoyanovb/gradina-api/internal/interfaces/http"
	"github.com/stoyanovb/gradina-api/pkg/config"
	"github.com/stoyanovb/gradina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	stockLogRepo := postgres.NewStockLogRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Settings cache is optional: without Redis the catalog just reads the
	// settings row on every request.
	var settingsCache usecase.SettingsCache = usecase.NoopSettingsCache{}
	redisCache, err := infraredis.NewSettingsCache(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, settings cache disabled")
	} else {
		settingsCache = redisCache
		defer redisCache.Close()
	}

	var mailer notify.Mailer
	if cfg.SMTP.Host != "" {
		mailer = email.NewGomailMailer(cfg.SMTP)
	} else {
		log.Info().Msg("SMTP not configured, notifications go to the log")
		mailer = email.NewLogMailer(log)
	}
	dispatcher := notify.NewDispatcher(mailer, log, 128)
	defer dispatcher.Close()

	policy := pricing.NewPolicy(pricing.TierConfig{
		SilverDiscount:    cfg.Tiers.SilverDiscount,
		SilverTermsDays:   cfg.Tiers.SilverTermsDays,
		GoldDiscount:      cfg.Tiers.GoldDiscount,
		GoldTermsDays:     cfg.Tiers.GoldTermsDays,
		PlatinumDiscount:  cfg.Tiers.PlatinumDiscount,
		PlatinumTermsDays: cfg.Tiers.PlatinumTermsDays,
	})

	defaultRate, err := decimal.NewFromString(cfg.Store.DefaultEURRate)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.Store.DefaultEURRate).Msg("invalid STORE_DEFAULT_EUR_RATE")
	}

	movementUC := stock.NewMovementUseCase(txRunner, productRepo, stockRepo, stockLogRepo)
	companyUC := b2b.NewCompanyUseCase(companyRepo, policy, dispatcher, b2b.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orderUC := b2b.NewOrderUseCase(orderRepo, productRepo, companyRepo, dispatcher)
	productUC := usecase.NewProductUseCase(productRepo, policy)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, settingsCache, defaultRate)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(anthropicSvc)

	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		OrderUC:    orderUC,
		MovementUC: movementUC,
		ProductUC:  productUC,
		SettingsUC: settingsUC,
		AIUC:       aiUC,
		PDFGen:     pdfGenerator,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/auth"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/rfid"
	appshelf "github.com/iheb2023-web/Inventaire-IoT/internal/application/shelf"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/usecase"
	"github.com/iheb2023-web/Inventaire-IoT/internal/infrastructure/postgres"
	httpRouter "github.com/iheb2023-web/Inventaire-IoT/internal/interfaces/http"
	"github.com/iheb2023-web/Inventaire-IoT/internal/interfaces/ws"
	"github.com/iheb2023-web/Inventaire-IoT/pkg/config"
	"github.com/iheb2023-web/Inventaire-IoT/pkg/logger"
	"github.com/iheb2023-web/Inventaire-IoT/pkg/metrics"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	storeStockRepo := postgres.NewStoreStockRepository(pool)
	shelfRepo := postgres.NewShelfRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	eventRepo := postgres.NewRfidEventRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rfidHub := ws.NewHub()
	go rfidHub.Run()

	productUC := usecase.NewProductUseCase(productRepo, stockRepo)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo, eventRepo)
	rfidUC := rfid.NewEventUseCase(txRunner, productRepo, rfidHub)
	shelfUC := appshelf.NewUseCase(txRunner, shelfRepo, alertRepo, storeStockRepo)
	authUC := auth.NewUseCase(
		auth.AdminConfig{Email: cfg.Admin.Email, PasswordHash: cfg.Admin.PasswordHash},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	httpMetrics := metrics.NewHTTPMetrics(cfg.App.Name)
	app.Use(httpMetrics.Middleware())
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventaire IoT API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
		RfidUC:      rfidUC,
		ShelfUC:     shelfUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		DeviceKey:   cfg.Device.APIKey,
		RfidHub:     rfidHub,
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

// @title                      Planta API
// @version                    1.0
// @description                Inventario, pedidos y alertas de planta.
// @BasePath                   /
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
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
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/Planta-api/docs"
	"github.com/jhoicas/Planta-api/internal/application/alerts"
	"github.com/jhoicas/Planta-api/internal/application/auth"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/application/orders"
	"github.com/jhoicas/Planta-api/internal/application/production"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/Planta-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Planta-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Planta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Planta-api/internal/interfaces/http"
	"github.com/jhoicas/Planta-api/pkg/config"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	inventoryArchiveRepo := postgres.NewInventoryArchiveRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderArchiveRepo := postgres.NewOrderArchiveRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	runRepo := postgres.NewProductionRunRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Inventario: traslados, ítems y auditoría comparten el mismo registrador
	audit := inventory.NewAuditRecorder(time.Now)
	transferUC := inventory.NewTransferUseCase(txRunner, audit, log)
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, audit, log)
	archiveUC := inventory.NewArchiveUseCase(inventoryArchiveRepo, infraexcel.NewArchiveExporter())

	// Pedidos: comprobante PDF de pedidos archivados
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, orderArchiveRepo, receipts,
		orders.Config{PhoneRegion: cfg.Orders.PhoneRegion}, log)

	alertUC := alerts.NewAlertUseCase(alertRepo, log)
	catalogUC := usecase.NewCatalogUseCase(productRepo, warehouseRepo)
	productionUC := production.NewProductionUseCase(runRepo, productRepo, time.Now, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.DocsPath,
		Path:     "docs",
		Title:    "Planta API",
	}))
	app.Get("/swagger.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		AuthUC:     authUC,
		Transfers:  transferUC,
		Items:      itemUC,
		Archive:    archiveUC,
		Orders:     orderUC,
		Alerts:     alertUC,
		Catalog:    catalogUC,
		Production: productionUC,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
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

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain/access"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	AuthUC     authService
	Transfers  transferService
	Items      itemService
	Archive    archiveService
	Orders     orderService
	Alerts     alertService
	Catalog    catalogService
	Production productionService
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Name: deps.AppName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	can := RequireCapability

	// Inventario. Las rutas fijas van antes que /:item_id.
	inv := protected.Group("/inventory")
	invHandler := NewInventoryHandler(deps.Transfers, deps.Items, deps.Archive, deps.Log)
	inv.Post("/transfer", can(access.CapInventoryWrite), invHandler.Transfer)
	inv.Get("/archive", can(access.CapInventoryAudit), invHandler.ListArchive)
	inv.Get("/archive/export", can(access.CapInventoryAudit), invHandler.ExportArchive)
	inv.Get("/warehouse/:type", can(access.CapInventoryRead), invHandler.ListByWarehouse)
	inv.Post("/warehouse/:type", can(access.CapInventoryWrite), invHandler.AddItem)
	inv.Put("/:item_id", can(access.CapInventoryWrite), invHandler.UpdateItem)
	inv.Delete("/:item_id", can(access.CapInventoryWrite), invHandler.DeleteItem)

	// Pedidos
	ord := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.Orders, deps.Log)
	ord.Post("/", can(access.CapOrdersWrite), orderHandler.Create)
	ord.Get("/", can(access.CapOrdersRead), orderHandler.List)
	ord.Get("/archive", can(access.CapOrdersRead), orderHandler.ListArchive)
	ord.Get("/archive/:id/pdf", can(access.CapOrdersRead), orderHandler.Receipt)
	ord.Put("/:id/status", can(access.CapOrdersWrite), orderHandler.UpdateStatus)

	protected.Get("/revenue", can(access.CapRevenueRead), orderHandler.Revenue)

	// Catálogo
	productHandler := NewProductHandler(deps.Catalog, deps.Log)
	protected.Get("/products", can(access.CapInventoryRead), productHandler.List)
	protected.Post("/products", can(access.CapInventoryWrite), productHandler.Create)
	warehouseHandler := NewWarehouseHandler(deps.Catalog, deps.Log)
	protected.Get("/warehouses", can(access.CapInventoryRead), warehouseHandler.List)

	// Producción (admin y production_staff). Las rutas fijas van antes que /runs/:ref.
	prod := protected.Group("/production")
	prodHandler := NewProductionHandler(deps.Production, deps.Log)
	prod.Get("/archived", can(access.CapProductionRead), prodHandler.ListArchived)
	prod.Get("/runs", can(access.CapProductionRead), prodHandler.List)
	prod.Post("/runs", can(access.CapProductionWrite), prodHandler.Create)
	prod.Get("/runs/:ref/machine-status", can(access.CapProductionRead), prodHandler.MachineStatus)
	prod.Post("/runs/:ref/machine-status", can(access.CapProductionWrite), prodHandler.SetMachineStatus)
	prod.Get("/runs/:ref", can(access.CapProductionRead), prodHandler.Get)
	prod.Put("/runs/:ref", can(access.CapProductionWrite), prodHandler.Update)

	// Alertas
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.Alerts, deps.Log)
	alerts.Post("/", can(access.CapAlertsWrite), alertHandler.Create)
	alerts.Get("/", can(access.CapAlertsRead), alertHandler.List)
	alerts.Put("/:id/status", can(access.CapAlertsWrite), alertHandler.UpdateStatus)
}

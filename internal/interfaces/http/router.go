package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/auth"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/rfid"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/shelf"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/usecase"
	"github.com/iheb2023-web/Inventaire-IoT/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	DashboardUC *usecase.DashboardUseCase
	RfidUC      *rfid.EventUseCase
	ShelfUC     *shelf.UseCase
	AuthUC      *auth.UseCase
	RfidHub     *ws.Hub
	JWTSecret   string
	DeviceKey   string
}

// Router registra las rutas de la API.
// Tres niveles de acceso: público (login, lookup de registro), dispositivo
// (lectores ESP32 con X-Device-Key) y administrador (Bearer JWT).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	requireAdmin := AuthMiddleware(deps.JWTSecret)
	requireDevice := DeviceAuthMiddleware(deps.DeviceKey)

	// Products: lookup abierto (flujo de registro desde el escáner),
	// registro y listados protegidos.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/rfid/:uid", productHandler.CheckByRfid)
	products.Get("/barcode/:code", productHandler.CheckByBarcode)
	products.Post("/", requireAdmin, productHandler.Register)
	products.Get("/", requireAdmin, productHandler.List)
	products.Get("/with-stock", requireAdmin, productHandler.ListWithStock)
	products.Get("/:id", requireAdmin, productHandler.GetDetail)

	// RFID: lecturas de dispositivos + lecturas del dashboard.
	rfidGroup := api.Group("/rfid")
	rfidHandler := NewRfidHandler(deps.RfidUC)
	rfidGroup.Post("/stock/entry", requireDevice, rfidHandler.StockEntry)
	rfidGroup.Post("/stock/exit", requireDevice, rfidHandler.StockExit)
	rfidGroup.Post("/store/entry", requireDevice, rfidHandler.StoreEntry)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	rfidGroup.Get("/stats", requireAdmin, dashboardHandler.Stats)
	rfidGroup.Get("/events/recent", requireAdmin, dashboardHandler.RecentEvents)
	rfidGroup.Get("/events/recent-with-product", requireAdmin, dashboardHandler.RecentEventsWithProduct)

	// Feed en vivo de eventos RFID para el dashboard (WebSocket).
	if deps.RfidHub != nil {
		api.Use("/ws", ws.UpgradeRequired)
		api.Get("/ws/rfid", deps.RfidHub.Handler())
	}

	// Shelf: peso desde sensores, listados para el dashboard.
	shelfGroup := api.Group("/shelf")
	shelfHandler := NewShelfHandler(deps.ShelfUC)
	shelfGroup.Post("/weight", requireDevice, shelfHandler.UpdateWeight)
	shelfGroup.Get("/", requireAdmin, shelfHandler.List)
	shelfGroup.Get("/:id/alerts", requireAdmin, shelfHandler.ListAlerts)
	shelfGroup.Get("/:id/stock", requireAdmin, shelfHandler.ListStock)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/dto"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/usecase"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
)

// DashboardHandler lecturas agregadas para el dashboard de administración.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Totales del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/rfid/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ApiResponse{Status: "OK", Data: dto.StatsResponse{
		TotalProducts:   stats.TotalProducts,
		TotalStock:      stats.TotalStock,
		TotalStoreStock: stats.TotalStoreStock,
		LowStockShelves: stats.LowStockShelves,
	}})
}

// RecentEvents godoc
// @Summary      Últimos eventos RFID
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite (default 20, máx 100)"
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/rfid/events/recent [get]
func (h *DashboardHandler) RecentEvents(c *fiber.Ctx) error {
	events, err := h.uc.RecentEvents(c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.RfidEventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, toEventResponse(e, ""))
	}
	return c.JSON(dto.ApiResponse{Status: "OK", Data: items})
}

// RecentEventsWithProduct godoc
// @Summary      Últimos eventos RFID con nombre de producto
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite (default 20, máx 100)"
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/rfid/events/recent-with-product [get]
func (h *DashboardHandler) RecentEventsWithProduct(c *fiber.Ctx) error {
	events, err := h.uc.RecentEventsWithProduct(c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.RfidEventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, toEventResponse(&e.RfidEvent, e.ProductName))
	}
	return c.JSON(dto.ApiResponse{Status: "OK", Data: items})
}

func toEventResponse(e *entity.RfidEvent, productName string) dto.RfidEventResponse {
	return dto.RfidEventResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: productName,
		EventType:   e.EventType,
		Location:    e.Location,
		Esp32ID:     e.Esp32ID,
		CreatedAt:   e.CreatedAt,
	}
}

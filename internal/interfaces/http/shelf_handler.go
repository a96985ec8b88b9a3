package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/dto"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/shelf"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
)

// ShelfHandler maneja las lecturas de peso de estantes y sus alertas.
type ShelfHandler struct {
	uc *shelf.UseCase
}

// NewShelfHandler construye el handler.
func NewShelfHandler(uc *shelf.UseCase) *ShelfHandler {
	return &ShelfHandler{uc: uc}
}

// UpdateWeight godoc
// @Summary      Actualizar peso de estante
// @Description  Persiste el peso y abre/resuelve la alerta de bajo peso según el umbral del estante.
// @Tags         shelf
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShelfWeightRequest  true  "shelfId, currentWeight"
// @Success      200   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shelf/weight [post]
func (h *ShelfHandler) UpdateWeight(c *fiber.Ctx) error {
	var req dto.ShelfWeightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateWeight(c.Context(), req.ShelfID, req.CurrentWeight); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estante desconocido"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "shelfId requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ApiResponse{Status: "WEIGHT_UPDATED"})
}

// List godoc
// @Summary      Listar estantes
// @Tags         shelf
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/shelf [get]
func (h *ShelfHandler) List(c *fiber.Ctx) error {
	shelves, err := h.uc.ListShelves()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.ShelfResponse, 0, len(shelves))
	for _, s := range shelves {
		items = append(items, dto.ToShelfResponse(s))
	}
	return c.JSON(dto.ApiResponse{Status: "OK", Data: items})
}

// ListStock godoc
// @Summary      Contenido de un estante
// @Description  Productos y cantidades presentes en el estante.
// @Tags         shelf
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del estante"
// @Success      200  {object}  dto.ApiResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shelf/{id}/stock [get]
func (h *ShelfHandler) ListStock(c *fiber.Ctx) error {
	stock, err := h.uc.ListStock(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estante desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.StoreStockResponse, 0, len(stock))
	for _, s := range stock {
		items = append(items, dto.ToStoreStockResponse(s))
	}
	return c.JSON(dto.ApiResponse{Status: "OK", Data: items})
}

// ListAlerts godoc
// @Summary      Historial de alertas de un estante
// @Tags         shelf
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del estante"
// @Param        limit   query  int     false  "Límite (default 20)"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {object}  dto.ApiResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shelf/{id}/alerts [get]
func (h *ShelfHandler) ListAlerts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	alerts, err := h.uc.ListAlerts(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estante desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, dto.ToAlertResponse(a))
	}
	return c.JSON(dto.ApiResponse{Status: "OK", Data: items})
}

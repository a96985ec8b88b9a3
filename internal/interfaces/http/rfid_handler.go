package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/dto"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/rfid"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/pkg/metrics"
)

// RfidHandler maneja las lecturas RFID reportadas por los lectores ESP32.
type RfidHandler struct {
	uc *rfid.EventUseCase
}

// NewRfidHandler construye el handler.
func NewRfidHandler(uc *rfid.EventUseCase) *RfidHandler {
	return &RfidHandler{uc: uc}
}

// normalizeQty aplica el default del protocolo: qty ausente o <= 0 vale 1.
func normalizeQty(qty *int) int {
	if qty == nil || *qty <= 0 {
		return 1
	}
	return *qty
}

// rfidError mapea los errores de dominio del flujo RFID a HTTP.
func rfidError(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o estante desconocido; registrar primero"})
	}
	if err == domain.ErrInsufficientStock {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func rfidResult(err error) string {
	if err == nil {
		return "ok"
	}
	if err == domain.ErrInsufficientStock {
		return "insufficient_stock"
	}
	return "error"
}

// StockEntry godoc
// @Summary      Entrada a bodega por lectura RFID
// @Tags         rfid
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RfidStockRequest  true  "rfidTag, esp32Id, qty (opcional, default 1)"
// @Success      200   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rfid/stock/entry [post]
func (h *RfidHandler) StockEntry(c *fiber.Ctx) error {
	var req dto.RfidStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.StockEntry(c.Context(), rfid.StockInput{
		RfidTag: req.RfidTag,
		Esp32ID: req.Esp32ID,
		Qty:     normalizeQty(req.Qty),
	})
	metrics.RfidEventCounter.WithLabelValues(entity.EventTypeEntry, entity.EventLocationStock, rfidResult(err)).Inc()
	if err != nil {
		return rfidError(c, err)
	}
	return c.JSON(dto.ApiResponse{Status: "STOCK_ENTRY_OK"})
}

// StockExit godoc
// @Summary      Salida de bodega por lectura RFID
// @Description  Falla con 409 si la cantidad disponible no alcanza; en ese caso nada se persiste, ni el evento.
// @Tags         rfid
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RfidStockRequest  true  "rfidTag, esp32Id, qty (opcional, default 1)"
// @Success      200   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rfid/stock/exit [post]
func (h *RfidHandler) StockExit(c *fiber.Ctx) error {
	var req dto.RfidStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.StockExit(c.Context(), rfid.StockInput{
		RfidTag: req.RfidTag,
		Esp32ID: req.Esp32ID,
		Qty:     normalizeQty(req.Qty),
	})
	metrics.RfidEventCounter.WithLabelValues(entity.EventTypeExit, entity.EventLocationStock, rfidResult(err)).Inc()
	if err != nil {
		return rfidError(c, err)
	}
	return c.JSON(dto.ApiResponse{Status: "STOCK_EXIT_OK"})
}

// StoreEntry godoc
// @Summary      Transferencia bodega -> estante por lectura RFID
// @Description  Decrementa bodega e incrementa el estante en una sola transacción (todo o nada).
// @Tags         rfid
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RfidStoreEntryRequest  true  "rfidTag, esp32Id, shelfId, qty (opcional, default 1)"
// @Success      200   {object}  dto.ApiResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rfid/store/entry [post]
func (h *RfidHandler) StoreEntry(c *fiber.Ctx) error {
	var req dto.RfidStoreEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.StoreEntry(c.Context(), rfid.StoreEntryInput{
		RfidTag: req.RfidTag,
		Esp32ID: req.Esp32ID,
		ShelfID: req.ShelfID,
		Qty:     normalizeQty(req.Qty),
	})
	metrics.RfidEventCounter.WithLabelValues(entity.EventTypeEntry, entity.EventLocationStore, rfidResult(err)).Inc()
	if err != nil {
		return rfidError(c, err)
	}
	return c.JSON(dto.ApiResponse{Status: "STORE_ENTRY_OK"})
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
)

// RegisterProductRequest entrada para registrar un producto nuevo
// (típicamente desde el formulario tras escanear un tag desconocido).
type RegisterProductRequest struct {
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode"`
	RfidTag     string          `json:"rfidTag"`
	Description string          `json:"description"`
	UnitWeight  decimal.Decimal `json:"unitWeight"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	RfidTag     *string         `json:"rfidTag"`
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitWeight  decimal.Decimal `json:"unitWeight"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductDetailResponse producto con su cantidad en bodega (vista de detalle).
type ProductDetailResponse struct {
	ProductResponse
	StockQuantity int `json:"stockQuantity"`
}

// ProductWithStockResponse producto con cantidades agregadas (dashboard).
type ProductWithStockResponse struct {
	ProductResponse
	StockQuantity      int `json:"stockQuantity"`
	StoreStockQuantity int `json:"storeStockQuantity"`
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		RfidTag:     p.RfidTag,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		UnitWeight:  p.UnitWeight,
		CreatedAt:   p.CreatedAt,
	}
}

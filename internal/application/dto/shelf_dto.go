package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
)

// ShelfWeightRequest lectura del sensor de peso de un estante.
type ShelfWeightRequest struct {
	ShelfID       string          `json:"shelfId"`
	CurrentWeight decimal.Decimal `json:"currentWeight"`
}

// ShelfResponse salida de un estante.
type ShelfResponse struct {
	ID            string          `json:"id"`
	Label         string          `json:"label"`
	MinThreshold  decimal.Decimal `json:"minThreshold"`
	CurrentWeight decimal.Decimal `json:"currentWeight"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// StoreStockResponse una fila del contenido de un estante.
type StoreStockResponse struct {
	ProductID string    `json:"productId"`
	ShelfID   string    `json:"shelfId"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToStoreStockResponse mapea la entidad al DTO de salida.
func ToStoreStockResponse(s *entity.StoreStock) StoreStockResponse {
	return StoreStockResponse{
		ProductID: s.ProductID,
		ShelfID:   s.ShelfID,
		Quantity:  s.Quantity,
		UpdatedAt: s.UpdatedAt,
	}
}

// AlertResponse salida de una alerta.
type AlertResponse struct {
	ID         string     `json:"id"`
	ShelfID    string     `json:"shelfId"`
	AlertType  string     `json:"alertType"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

// ToShelfResponse mapea la entidad al DTO de salida.
func ToShelfResponse(s *entity.Shelf) ShelfResponse {
	return ShelfResponse{
		ID:            s.ID,
		Label:         s.Label,
		MinThreshold:  s.MinThreshold,
		CurrentWeight: s.CurrentWeight,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToAlertResponse mapea la entidad al DTO de salida.
func ToAlertResponse(a *entity.Alert) AlertResponse {
	return AlertResponse{
		ID:         a.ID,
		ShelfID:    a.ShelfID,
		AlertType:  a.AlertType,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
}

package dto

import "time"

// RfidStockRequest lectura RFID contra la bodega central (entrada o salida).
// Qty es opcional: ausente o <= 0 se interpreta como 1 en el handler.
type RfidStockRequest struct {
	RfidTag string `json:"rfidTag"`
	Esp32ID string `json:"esp32Id"`
	Qty     *int   `json:"qty"`
}

// RfidStoreEntryRequest transferencia bodega -> estante de tienda.
type RfidStoreEntryRequest struct {
	RfidTag string `json:"rfidTag"`
	Esp32ID string `json:"esp32Id"`
	ShelfID string `json:"shelfId"`
	Qty     *int   `json:"qty"`
}

// RfidEventResponse evento del log para el dashboard.
type RfidEventResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName,omitempty"`
	EventType   string    `json:"eventType"`
	Location    string    `json:"location"`
	Esp32ID     string    `json:"esp32Id"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatsResponse totales del inventario para el dashboard.
type StatsResponse struct {
	TotalProducts   int `json:"totalProducts"`
	TotalStock      int `json:"totalStock"`
	TotalStoreStock int `json:"totalStoreStock"`
	LowStockShelves int `json:"lowStockShelves"`
}

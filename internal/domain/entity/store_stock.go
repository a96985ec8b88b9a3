package entity

import "time"

// StoreStock representa la cantidad de un producto en un estante de tienda.
// Única por (producto, estante); se crea con la primera transferencia.
type StoreStock struct {
	ProductID string
	ShelfID   string
	Quantity  int
	UpdatedAt time.Time
}

package entity

import "time"

// Stock representa la cantidad en bodega central de un producto.
// Una fila por producto; se crea de forma perezosa con la primera entrada.
type Stock struct {
	ProductID string
	Quantity  int
	UpdatedAt time.Time
}

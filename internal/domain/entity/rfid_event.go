package entity

import "time"

// Tipos y ubicaciones de evento RFID.
const (
	EventTypeEntry = "ENTRY"
	EventTypeExit  = "EXIT"

	EventLocationStock = "STOCK" // bodega central
	EventLocationStore = "STORE" // estante de tienda
)

// RfidEvent registra una lectura RFID procesada. Tabla append-only:
// los eventos nunca se modifican ni se borran.
type RfidEvent struct {
	ID        string
	ProductID string
	EventType string // ENTRY | EXIT
	Location  string // STOCK | STORE
	Esp32ID   string // identificador del lector que reportó la lectura
	CreatedAt time.Time
}

// RfidEventWithProduct evento enriquecido con el nombre del producto (para el dashboard).
type RfidEventWithProduct struct {
	RfidEvent
	ProductName string
}

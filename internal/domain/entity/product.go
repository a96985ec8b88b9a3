package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo, identificado físicamente por
// su tag RFID (nulo hasta que se etiqueta) y por su código de barras.
// Inmutable después del registro; no se soporta re-registro.
type Product struct {
	ID          string
	RfidTag     *string // UID del tag RFID, único; nil hasta etiquetar
	Barcode     string  // código de barras, único
	Name        string
	Description string
	UnitWeight  decimal.Decimal // peso unitario en kilogramos
	CreatedAt   time.Time
}

// ProductWithStock producto con sus cantidades agregadas: bodega central
// y suma de todos los estantes (para el dashboard de administración).
type ProductWithStock struct {
	Product
	StockQuantity      int
	StoreStockQuantity int
}

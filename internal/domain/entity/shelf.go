package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shelf representa un estante de tienda con sensor de peso.
// Los estantes son estáticos (se crean por seed); en runtime solo cambia CurrentWeight.
type Shelf struct {
	ID            string
	Label         string
	MinThreshold  decimal.Decimal // peso mínimo antes de considerar el estante vacío
	CurrentWeight decimal.Decimal
	UpdatedAt     time.Time
}

package entity

import "time"

// Tipos y estados de alerta.
const (
	AlertTypeLowWeight = "LOW_WEIGHT"

	AlertStatusOpen     = "OPEN"
	AlertStatusResolved = "RESOLVED" // estado terminal: una alerta resuelta no se reabre
)

// Alert representa una alerta de bajo peso sobre un estante.
// Invariante: como máximo una alerta OPEN por estante. Un nuevo umbral
// incumplido después de resolver crea una alerta nueva, nunca reabre.
type Alert struct {
	ID         string
	ShelfID    string
	AlertType  string // LOW_WEIGHT
	Status     string // OPEN | RESOLVED
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

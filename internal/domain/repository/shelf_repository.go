package repository

import (
	"github.com/shopspring/decimal"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
)

// ShelfRepository define el puerto de persistencia para Shelf.
// Los estantes se crean por seed; en runtime solo se actualiza el peso.
type ShelfRepository interface {
	Create(shelf *entity.Shelf) error
	GetByID(id string) (*entity.Shelf, error)
	UpdateCurrentWeight(shelfID string, weight decimal.Decimal) error
	List() ([]*entity.Shelf, error)
}

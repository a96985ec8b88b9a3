package repository

import "github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByRfidTag y GetByBarcode devuelven (nil, nil) cuando no existe:
// la ausencia no es un error, el caller la interpreta como producto nuevo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByRfidTag(rfidTag string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListWithStock(limit, offset int) ([]*entity.ProductWithStock, error)
}

package repository

import "github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"

// StoreStockRepository define el puerto para el libro de estantes de tienda.
// No hay lectura de una celda (producto, estante) individual: las lecturas
// son siempre por estante completo o agregados del catálogo.
type StoreStockRepository interface {
	// IncrementBy upsert con delta por (producto, estante).
	IncrementBy(productID, shelfID string, qty int) error
	ListByShelf(shelfID string) ([]*entity.StoreStock, error)
}

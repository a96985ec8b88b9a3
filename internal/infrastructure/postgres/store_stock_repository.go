package postgres

import (
	"context"
	"fmt"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

var _ repository.StoreStockRepository = (*StoreStockRepo)(nil)

// StoreStockRepo implementación de StoreStockRepository sobre PostgreSQL (usable con pool o tx).
type StoreStockRepo struct {
	q Querier
}

// NewStoreStockRepository construye el adaptador de stock de tienda. Pasar pool o tx (Querier).
func NewStoreStockRepository(q Querier) *StoreStockRepo {
	return &StoreStockRepo{q: q}
}

// IncrementBy suma qty al stock del (producto, estante), creando la fila si no
// existe. Un estante desconocido viola la FK y se reporta como ErrNotFound.
func (r *StoreStockRepo) IncrementBy(productID, shelfID string, qty int) error {
	query := `
		INSERT INTO store_stock (product_id, shelf_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, shelf_id)
		DO UPDATE SET quantity = store_stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, shelfID, qty)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("increment store stock: %w", err)
	}
	return nil
}

// ListByShelf lista el stock de un estante.
func (r *StoreStockRepo) ListByShelf(shelfID string) ([]*entity.StoreStock, error) {
	query := `
		SELECT product_id, shelf_id, quantity, updated_at
		FROM store_stock WHERE shelf_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, shelfID)
	if err != nil {
		return nil, fmt.Errorf("list store stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreStock
	for rows.Next() {
		var s entity.StoreStock
		if err := rows.Scan(&s.ProductID, &s.ShelfID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

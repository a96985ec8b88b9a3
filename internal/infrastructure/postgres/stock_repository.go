package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto. Sin fila equivale a cantidad cero.
func (r *StockRepo) Get(productID string) (*entity.Stock, error) {
	query := `SELECT product_id, quantity, updated_at FROM stock WHERE product_id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&s.ProductID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// IncrementBy suma qty al stock del producto, creando la fila si no existe.
// Upsert con delta en una sola sentencia: correcto bajo entradas concurrentes.
func (r *StockRepo) IncrementBy(productID string, qty int) error {
	query := `
		INSERT INTO stock (product_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, qty)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// DecrementIfEnough resta qty solo si la cantidad disponible alcanza.
// Update condicional en una sola sentencia: bajo salidas concurrentes la
// cantidad nunca queda negativa. Cero filas afectadas => stock insuficiente.
func (r *StockRepo) DecrementIfEnough(productID string, qty int) (bool, error) {
	query := `
		UPDATE stock SET quantity = quantity - $2, updated_at = now()
		WHERE product_id = $1 AND quantity >= $2`
	cmd, err := r.q.Exec(context.Background(), query, productID, qty)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/rfid"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/shelf"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

// Ensure TxRunner implements rfid.TxRunner and shelf.TxRunner.
var _ rfid.TxRunner = (*TxRunner)(nil)
var _ shelf.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del flujo RFID (evento + bodega +
// estantes) atados a la tx y hace Commit o Rollback. Si fn falla, el rollback
// descarta también el evento insertado: ningún estado parcial sobrevive.
func (r *TxRunner) Run(ctx context.Context, fn func(
	eventRepo repository.RfidEventRepository,
	stockRepo repository.StockRepository,
	storeStockRepo repository.StoreStockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	eventRepo := NewRfidEventRepository(tx)
	stockRepo := NewStockRepository(tx)
	storeStockRepo := NewStoreStockRepository(tx)

	if err := fn(eventRepo, stockRepo, storeStockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunShelf inicia una transacción con los repos del flujo de peso de estante
// (estante + alertas), para que peso y alerta cambien de forma atómica.
func (r *TxRunner) RunShelf(ctx context.Context, fn func(
	shelfRepo repository.ShelfRepository,
	alertRepo repository.AlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shelfRepo := NewShelfRepository(tx)
	alertRepo := NewAlertRepository(tx)

	if err := fn(shelfRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo agregados de inventario para el dashboard (usable con pool o tx).
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// Totals devuelve los totales de productos, bodega, estantes y alertas abiertas.
func (r *StatsRepo) Totals() (*repository.InventoryStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COALESCE(SUM(quantity), 0) FROM stock),
			(SELECT COALESCE(SUM(quantity), 0) FROM store_stock),
			(SELECT COUNT(*) FROM alerts WHERE status = 'OPEN')`
	var s repository.InventoryStats
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.TotalProducts, &s.TotalStock, &s.TotalStoreStock, &s.LowStockShelves,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory totals: %w", err)
	}
	return &s, nil
}

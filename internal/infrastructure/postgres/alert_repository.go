package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta nueva. El índice único parcial sobre
// (shelf_id) WHERE status = 'OPEN' respalda el invariante de una sola
// alerta abierta por estante.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, shelf_id, alert_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ShelfID, alert.AlertType, alert.Status, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// FindOpenByShelf busca la alerta OPEN del estante. Devuelve (nil, nil) si no hay.
func (r *AlertRepo) FindOpenByShelf(shelfID string) (*entity.Alert, error) {
	query := `
		SELECT id, shelf_id, alert_type, status, created_at, resolved_at
		FROM alerts WHERE shelf_id = $1 AND status = 'OPEN'`
	var a entity.Alert
	err := r.q.QueryRow(context.Background(), query, shelfID).Scan(
		&a.ID, &a.ShelfID, &a.AlertType, &a.Status, &a.CreatedAt, &a.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open alert: %w", err)
	}
	return &a, nil
}

// Resolve marca la alerta como RESOLVED. RESOLVED es terminal: el WHERE
// sobre status impide tocar alertas ya resueltas.
func (r *AlertRepo) Resolve(alertID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE alerts SET status = 'RESOLVED', resolved_at = now() WHERE id = $1 AND status = 'OPEN'`,
		alertID,
	)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	return nil
}

// ListByShelf lista el historial de alertas de un estante, recientes primero.
func (r *AlertRepo) ListByShelf(shelfID string, limit, offset int) ([]*entity.Alert, error) {
	query := `
		SELECT id, shelf_id, alert_type, status, created_at, resolved_at
		FROM alerts WHERE shelf_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, shelfID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.ShelfID, &a.AlertType, &a.Status, &a.CreatedAt, &a.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

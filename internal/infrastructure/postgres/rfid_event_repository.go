package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

var _ repository.RfidEventRepository = (*RfidEventRepo)(nil)

// RfidEventRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay métodos de update ni delete.
type RfidEventRepo struct {
	q Querier
}

// NewRfidEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRfidEventRepository(q Querier) *RfidEventRepo {
	return &RfidEventRepo{q: q}
}

// Create persiste un evento RFID.
func (r *RfidEventRepo) Create(event *entity.RfidEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	query := `
		INSERT INTO rfid_events (id, product_id, event_type, location, esp32_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.ProductID, event.EventType, event.Location, event.Esp32ID, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rfid event: %w", err)
	}
	return nil
}

// ListRecent lista los últimos eventos, recientes primero.
func (r *RfidEventRepo) ListRecent(limit int) ([]*entity.RfidEvent, error) {
	query := `
		SELECT id, product_id, event_type, location, esp32_id, created_at
		FROM rfid_events ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list rfid events: %w", err)
	}
	defer rows.Close()
	var list []*entity.RfidEvent
	for rows.Next() {
		var e entity.RfidEvent
		if err := rows.Scan(&e.ID, &e.ProductID, &e.EventType, &e.Location, &e.Esp32ID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rfid event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListRecentWithProduct lista los últimos eventos con el nombre del producto (dashboard).
func (r *RfidEventRepo) ListRecentWithProduct(limit int) ([]*entity.RfidEventWithProduct, error) {
	query := `
		SELECT e.id, e.product_id, e.event_type, e.location, e.esp32_id, e.created_at, p.name
		FROM rfid_events e
		JOIN products p ON p.id = e.product_id
		ORDER BY e.created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list rfid events with product: %w", err)
	}
	defer rows.Close()
	var list []*entity.RfidEventWithProduct
	for rows.Next() {
		var e entity.RfidEventWithProduct
		if err := rows.Scan(&e.ID, &e.ProductID, &e.EventType, &e.Location, &e.Esp32ID, &e.CreatedAt, &e.ProductName); err != nil {
			return nil, fmt.Errorf("scan rfid event with product: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

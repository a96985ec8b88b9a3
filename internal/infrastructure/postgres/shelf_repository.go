package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

var _ repository.ShelfRepository = (*ShelfRepo)(nil)

// ShelfRepo implementación de ShelfRepository sobre PostgreSQL (usable con pool o tx).
type ShelfRepo struct {
	q Querier
}

// NewShelfRepository construye el adaptador de estantes. Pasar pool o tx (Querier).
func NewShelfRepository(q Querier) *ShelfRepo {
	return &ShelfRepo{q: q}
}

// Create persiste un estante (usado por el seed).
func (r *ShelfRepo) Create(shelf *entity.Shelf) error {
	query := `
		INSERT INTO shelves (id, label, min_threshold, current_weight, updated_at)
		VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(context.Background(), query,
		shelf.ID, shelf.Label, shelf.MinThreshold, shelf.CurrentWeight,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shelf: %w", err)
	}
	return nil
}

// GetByID obtiene un estante por ID. Devuelve (nil, nil) si no existe.
func (r *ShelfRepo) GetByID(id string) (*entity.Shelf, error) {
	query := `
		SELECT id, label, min_threshold, current_weight, updated_at
		FROM shelves WHERE id = $1`
	var s entity.Shelf
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Label, &s.MinThreshold, &s.CurrentWeight, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shelf: %w", err)
	}
	return &s, nil
}

// UpdateCurrentWeight persiste el peso reportado por el sensor.
func (r *ShelfRepo) UpdateCurrentWeight(shelfID string, weight decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE shelves SET current_weight = $2, updated_at = now() WHERE id = $1`,
		shelfID, weight,
	)
	if err != nil {
		return fmt.Errorf("update shelf weight: %w", err)
	}
	return nil
}

// List lista todos los estantes.
func (r *ShelfRepo) List() ([]*entity.Shelf, error) {
	query := `
		SELECT id, label, min_threshold, current_weight, updated_at
		FROM shelves ORDER BY label`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shelf
	for rows.Next() {
		var s entity.Shelf
		if err := rows.Scan(&s.ID, &s.Label, &s.MinThreshold, &s.CurrentWeight, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shelf: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

package repository

import "github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"

// AlertRepository define el puerto de persistencia para Alert.
type AlertRepository interface {
	Create(alert *entity.Alert) error
	// FindOpenByShelf devuelve (nil, nil) si el estante no tiene alerta OPEN.
	FindOpenByShelf(shelfID string) (*entity.Alert, error)
	// Resolve marca la alerta como RESOLVED (estado terminal).
	Resolve(alertID string) error
	ListByShelf(shelfID string, limit, offset int) ([]*entity.Alert, error)
}

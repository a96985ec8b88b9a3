package repository

import "github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"

// RfidEventRepository define el puerto para el log de eventos RFID.
// El log es append-only: solo inserción y lectura, nunca update ni delete.
type RfidEventRepository interface {
	Create(event *entity.RfidEvent) error
	ListRecent(limit int) ([]*entity.RfidEvent, error)
	ListRecentWithProduct(limit int) ([]*entity.RfidEventWithProduct, error)
}

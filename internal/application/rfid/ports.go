package rfid

import (
	"context"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para los flujos RFID:
// evento + libro de bodega + libro de estantes cambian todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		eventRepo repository.RfidEventRepository,
		stockRepo repository.StockRepository,
		storeStockRepo repository.StoreStockRepository,
	) error) error
}

// EventPublisher difunde un evento RFID ya confirmado (commit incluido) a los
// suscriptores en vivo del dashboard. No debe bloquear el flujo de lecturas.
type EventPublisher interface {
	PublishEvent(event *entity.RfidEvent, productName string)
}

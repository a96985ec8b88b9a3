package rfid

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

// EventUseCase procesa lecturas RFID de forma transaccional: registra el
// evento en el log y muta exactamente un libro de cantidades (o dos en la
// transferencia bodega -> estante) con Commit/Rollback. Los eventos
// confirmados se difunden al feed en vivo del dashboard.
type EventUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	publisher   EventPublisher
}

// NewEventUseCase construye el caso de uso. publisher puede ser nil (sin feed).
func NewEventUseCase(txRunner TxRunner, productRepo repository.ProductRepository, publisher EventPublisher) *EventUseCase {
	return &EventUseCase{txRunner: txRunner, productRepo: productRepo, publisher: publisher}
}

// publish difunde el evento después del commit. Un evento revertido por
// rollback nunca llega al feed.
func (uc *EventUseCase) publish(event *entity.RfidEvent, productName string) {
	if uc.publisher != nil {
		uc.publisher.PublishEvent(event, productName)
	}
}

// StockInput entrada para una lectura contra la bodega central.
type StockInput struct {
	RfidTag string
	Esp32ID string
	Qty     int
}

// StoreEntryInput entrada para una transferencia bodega -> estante.
type StoreEntryInput struct {
	RfidTag string
	Esp32ID string
	ShelfID string
	Qty     int
}

// resolveProduct busca el producto del tag. Tag desconocido => ErrNotFound:
// el producto debe registrarse primero desde el formulario.
func (uc *EventUseCase) resolveProduct(rfidTag string) (*entity.Product, error) {
	if rfidTag == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByRfidTag(rfidTag)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// StockEntry registra una entrada a bodega: evento ENTRY/STOCK + upsert con
// delta sobre stock (crea la fila en la primera entrada). Sin tope superior.
func (uc *EventUseCase) StockEntry(ctx context.Context, input StockInput) error {
	if input.Qty <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.resolveProduct(input.RfidTag)
	if err != nil {
		return err
	}
	event := &entity.RfidEvent{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		EventType: entity.EventTypeEntry,
		Location:  entity.EventLocationStock,
		Esp32ID:   input.Esp32ID,
		CreatedAt: time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(
		eventRepo repository.RfidEventRepository,
		stockRepo repository.StockRepository,
		_ repository.StoreStockRepository,
	) error {
		if err := eventRepo.Create(event); err != nil {
			return err
		}
		return stockRepo.IncrementBy(product.ID, input.Qty)
	})
	if err != nil {
		return err
	}
	uc.publish(event, product.Name)
	return nil
}

// StockExit registra una salida de bodega: evento EXIT/STOCK + decremento
// condicional. Si el stock no alcanza, la operación completa (evento
// incluido) se revierte y se reporta ErrInsufficientStock.
func (uc *EventUseCase) StockExit(ctx context.Context, input StockInput) error {
	if input.Qty <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.resolveProduct(input.RfidTag)
	if err != nil {
		return err
	}
	event := &entity.RfidEvent{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		EventType: entity.EventTypeExit,
		Location:  entity.EventLocationStock,
		Esp32ID:   input.Esp32ID,
		CreatedAt: time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(
		eventRepo repository.RfidEventRepository,
		stockRepo repository.StockRepository,
		_ repository.StoreStockRepository,
	) error {
		if err := eventRepo.Create(event); err != nil {
			return err
		}
		ok, err := stockRepo.DecrementIfEnough(product.ID, input.Qty)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientStock
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.publish(event, product.Name)
	return nil
}

// StoreEntry transfiere de bodega a un estante: evento ENTRY/STORE,
// decremento condicional en bodega y upsert con delta en store_stock,
// todo dentro de una transacción (todo o nada entre los dos libros).
func (uc *EventUseCase) StoreEntry(ctx context.Context, input StoreEntryInput) error {
	if input.Qty <= 0 || input.ShelfID == "" {
		return domain.ErrInvalidInput
	}
	product, err := uc.resolveProduct(input.RfidTag)
	if err != nil {
		return err
	}
	event := &entity.RfidEvent{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		EventType: entity.EventTypeEntry,
		Location:  entity.EventLocationStore,
		Esp32ID:   input.Esp32ID,
		CreatedAt: time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(
		eventRepo repository.RfidEventRepository,
		stockRepo repository.StockRepository,
		storeStockRepo repository.StoreStockRepository,
	) error {
		if err := eventRepo.Create(event); err != nil {
			return err
		}
		ok, err := stockRepo.DecrementIfEnough(product.ID, input.Qty)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientStock
		}
		return storeStockRepo.IncrementBy(product.ID, input.ShelfID, input.Qty)
	})
	if err != nil {
		return err
	}
	uc.publish(event, product.Name)
	return nil
}

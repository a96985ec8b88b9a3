package shelf

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
	"github.com/iheb2023-web/Inventaire-IoT/pkg/metrics"
)

// TxRunner ejecuta una función dentro de una transacción con los repos del
// flujo de peso (estante + alertas), para que peso y alerta cambien juntos.
type TxRunner interface {
	RunShelf(ctx context.Context, fn func(
		shelfRepo repository.ShelfRepository,
		alertRepo repository.AlertRepository,
	) error) error
}

// UseCase actualiza el peso de los estantes y mantiene las alertas de bajo
// peso: abre cuando el peso cae bajo el umbral, resuelve cuando vuelve a
// superarlo. Las lecturas de listado van directo a los repos sobre el pool.
type UseCase struct {
	txRunner       TxRunner
	shelfRepo      repository.ShelfRepository
	alertRepo      repository.AlertRepository
	storeStockRepo repository.StoreStockRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, shelfRepo repository.ShelfRepository, alertRepo repository.AlertRepository, storeStockRepo repository.StoreStockRepository) *UseCase {
	return &UseCase{txRunner: txRunner, shelfRepo: shelfRepo, alertRepo: alertRepo, storeStockRepo: storeStockRepo}
}

// UpdateWeight persiste el peso reportado y evalúa el umbral del estante:
//   - peso < umbral: crea una alerta OPEN/LOW_WEIGHT si no hay ninguna
//     abierta (idempotente: lecturas bajas repetidas no duplican alertas).
//   - peso >= umbral: resuelve la alerta abierta si existe; sin alerta, no-op.
//
// RESOLVED es terminal: un nuevo incumplimiento crea una alerta nueva.
func (uc *UseCase) UpdateWeight(ctx context.Context, shelfID string, weight decimal.Decimal) error {
	if shelfID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunShelf(ctx, func(
		shelfRepo repository.ShelfRepository,
		alertRepo repository.AlertRepository,
	) error {
		sh, err := shelfRepo.GetByID(shelfID)
		if err != nil {
			return err
		}
		if sh == nil {
			return domain.ErrNotFound
		}
		// El peso se persiste siempre, esté o no bajo el umbral.
		if err := shelfRepo.UpdateCurrentWeight(shelfID, weight); err != nil {
			return err
		}

		open, err := alertRepo.FindOpenByShelf(shelfID)
		if err != nil {
			return err
		}
		if weight.LessThan(sh.MinThreshold) {
			if open != nil {
				return nil
			}
			alert := &entity.Alert{
				ID:        uuid.New().String(),
				ShelfID:   shelfID,
				AlertType: entity.AlertTypeLowWeight,
				Status:    entity.AlertStatusOpen,
				CreatedAt: time.Now(),
			}
			if err := alertRepo.Create(alert); err != nil {
				return err
			}
			metrics.AlertCounter.WithLabelValues("opened").Inc()
			return nil
		}
		if open != nil {
			if err := alertRepo.Resolve(open.ID); err != nil {
				return err
			}
			metrics.AlertCounter.WithLabelValues("resolved").Inc()
			return nil
		}
		return nil
	})
}

// ListShelves lista los estantes con su peso y umbral actuales.
func (uc *UseCase) ListShelves() ([]*entity.Shelf, error) {
	return uc.shelfRepo.List()
}

// ListStock lista el contenido de un estante: producto y cantidad por fila.
func (uc *UseCase) ListStock(shelfID string) ([]*entity.StoreStock, error) {
	if shelfID == "" {
		return nil, domain.ErrInvalidInput
	}
	sh, err := uc.shelfRepo.GetByID(shelfID)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, domain.ErrNotFound
	}
	return uc.storeStockRepo.ListByShelf(shelfID)
}

// ListAlerts lista el historial de alertas de un estante.
func (uc *UseCase) ListAlerts(shelfID string, limit, offset int) ([]*entity.Alert, error) {
	if shelfID == "" {
		return nil, domain.ErrInvalidInput
	}
	sh, err := uc.shelfRepo.GetByID(shelfID)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, domain.ErrNotFound
	}
	return uc.alertRepo.ListByShelf(shelfID, limit, offset)
}

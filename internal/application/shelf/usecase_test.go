package shelf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/shelf"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const estanteA = "00000000-0000-0000-0000-0000000000e1"

type memShelfRepo struct {
	shelves map[string]*entity.Shelf
}

func (r *memShelfRepo) Create(s *entity.Shelf) error {
	r.shelves[s.ID] = s
	return nil
}
func (r *memShelfRepo) GetByID(id string) (*entity.Shelf, error) {
	s, ok := r.shelves[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (r *memShelfRepo) UpdateCurrentWeight(shelfID string, weight decimal.Decimal) error {
	if s, ok := r.shelves[shelfID]; ok {
		s.CurrentWeight = weight
	}
	return nil
}
func (r *memShelfRepo) List() ([]*entity.Shelf, error) {
	var out []*entity.Shelf
	for _, s := range r.shelves {
		out = append(out, s)
	}
	return out, nil
}

type memAlertRepo struct {
	alerts []*entity.Alert
}

func (r *memAlertRepo) Create(a *entity.Alert) error {
	// Refleja el índice único parcial: una sola alerta OPEN por estante.
	for _, x := range r.alerts {
		if x.ShelfID == a.ShelfID && x.Status == entity.AlertStatusOpen {
			return domain.ErrDuplicate
		}
	}
	r.alerts = append(r.alerts, a)
	return nil
}
func (r *memAlertRepo) FindOpenByShelf(shelfID string) (*entity.Alert, error) {
	for _, a := range r.alerts {
		if a.ShelfID == shelfID && a.Status == entity.AlertStatusOpen {
			return a, nil
		}
	}
	return nil, nil
}
func (r *memAlertRepo) Resolve(alertID string) error {
	for _, a := range r.alerts {
		if a.ID == alertID && a.Status == entity.AlertStatusOpen {
			a.Status = entity.AlertStatusResolved
		}
	}
	return nil
}
func (r *memAlertRepo) ListByShelf(shelfID string, limit, offset int) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range r.alerts {
		if a.ShelfID == shelfID {
			out = append(out, a)
		}
	}
	return out, nil
}

// memStoreStockRepo contenidos de estante en memoria.
type memStoreStockRepo struct {
	rows []*entity.StoreStock
}

func (r *memStoreStockRepo) IncrementBy(productID, shelfID string, qty int) error {
	r.rows = append(r.rows, &entity.StoreStock{ProductID: productID, ShelfID: shelfID, Quantity: qty})
	return nil
}
func (r *memStoreStockRepo) ListByShelf(shelfID string) ([]*entity.StoreStock, error) {
	var out []*entity.StoreStock
	for _, row := range r.rows {
		if row.ShelfID == shelfID {
			out = append(out, row)
		}
	}
	return out, nil
}

// memTxRunner pasa los repos directamente: los casos de error del flujo de
// peso ocurren antes de cualquier mutación, así que no hace falta clonar.
type memTxRunner struct {
	shelfRepo repository.ShelfRepository
	alertRepo repository.AlertRepository
}

func (t *memTxRunner) RunShelf(ctx context.Context, fn func(
	shelfRepo repository.ShelfRepository,
	alertRepo repository.AlertRepository,
) error) error {
	return fn(t.shelfRepo, t.alertRepo)
}

func newTestUseCase(threshold float64) (*shelf.UseCase, *memShelfRepo, *memAlertRepo) {
	uc, shelfRepo, alertRepo, _ := newTestUseCaseConStock(threshold)
	return uc, shelfRepo, alertRepo
}

func newTestUseCaseConStock(threshold float64) (*shelf.UseCase, *memShelfRepo, *memAlertRepo, *memStoreStockRepo) {
	shelfRepo := &memShelfRepo{shelves: map[string]*entity.Shelf{
		estanteA: {
			ID:           estanteA,
			Label:        "Estantería A1",
			MinThreshold: decimal.NewFromFloat(threshold),
		},
	}}
	alertRepo := &memAlertRepo{}
	storeStockRepo := &memStoreStockRepo{}
	uc := shelf.NewUseCase(&memTxRunner{shelfRepo: shelfRepo, alertRepo: alertRepo}, shelfRepo, alertRepo, storeStockRepo)
	return uc, shelfRepo, alertRepo, storeStockRepo
}

func openAlerts(alerts []*entity.Alert) int {
	n := 0
	for _, a := range alerts {
		if a.Status == entity.AlertStatusOpen {
			n++
		}
	}
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateWeight — ciclo de vida de la alerta
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: umbral 5.0. Peso 3.0 abre una alerta; 3.5 (sigue bajo)
// no duplica; 6.0 resuelve la alerta abierta.
func TestUpdateWeight_CicloAbreSinDuplicarYResuelve(t *testing.T) {
	uc, shelfRepo, alertRepo := newTestUseCase(5.0)
	ctx := context.Background()

	// Peso bajo el umbral: se abre exactamente una alerta.
	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(3.0)))
	require.Len(t, alertRepo.alerts, 1)
	assert.Equal(t, entity.AlertStatusOpen, alertRepo.alerts[0].Status)
	assert.Equal(t, entity.AlertTypeLowWeight, alertRepo.alerts[0].AlertType)

	// Otra lectura baja: idempotente, sigue habiendo una sola alerta.
	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(3.5)))
	assert.Len(t, alertRepo.alerts, 1, "lecturas bajas repetidas no duplican la alerta")
	assert.Equal(t, 1, openAlerts(alertRepo.alerts))

	// Peso de nuevo sobre el umbral: la alerta se resuelve.
	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(6.0)))
	assert.Equal(t, 0, openAlerts(alertRepo.alerts))
	assert.Equal(t, entity.AlertStatusResolved, alertRepo.alerts[0].Status)

	// El peso se persistió en cada lectura.
	sh, err := shelfRepo.GetByID(estanteA)
	require.NoError(t, err)
	assert.True(t, sh.CurrentWeight.Equal(decimal.NewFromFloat(6.0)))
}

// RESOLVED es terminal: un nuevo incumplimiento crea una segunda alerta,
// nunca reabre la resuelta.
func TestUpdateWeight_NuevoIncumplimientoCreaAlertaNueva(t *testing.T) {
	uc, _, alertRepo := newTestUseCase(5.0)
	ctx := context.Background()

	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(2.0)))
	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(7.0)))
	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(1.5)))

	require.Len(t, alertRepo.alerts, 2, "debe existir la resuelta y la nueva abierta")
	assert.Equal(t, entity.AlertStatusResolved, alertRepo.alerts[0].Status)
	assert.Equal(t, entity.AlertStatusOpen, alertRepo.alerts[1].Status)
	assert.NotEqual(t, alertRepo.alerts[0].ID, alertRepo.alerts[1].ID)
}

// Peso igual al umbral no se considera bajo (la condición es estrictamente <).
func TestUpdateWeight_PesoIgualAlUmbralNoAbreAlerta(t *testing.T) {
	uc, _, alertRepo := newTestUseCase(5.0)

	require.NoError(t, uc.UpdateWeight(context.Background(), estanteA, decimal.NewFromFloat(5.0)))
	assert.Empty(t, alertRepo.alerts)
}

// Peso sobre el umbral sin alerta abierta: no-op.
func TestUpdateWeight_SinAlertaAbiertaEsNoOp(t *testing.T) {
	uc, shelfRepo, alertRepo := newTestUseCase(5.0)

	require.NoError(t, uc.UpdateWeight(context.Background(), estanteA, decimal.NewFromFloat(9.0)))
	assert.Empty(t, alertRepo.alerts)

	sh, err := shelfRepo.GetByID(estanteA)
	require.NoError(t, err)
	assert.True(t, sh.CurrentWeight.Equal(decimal.NewFromFloat(9.0)), "el peso se persiste igual")
}

func TestUpdateWeight_EstanteInexistenteRetornaNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(5.0)

	err := uc.UpdateWeight(context.Background(), "estante-fantasma", decimal.NewFromFloat(1.0))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateWeight_ShelfIDVacioRetornaInvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase(5.0)

	err := uc.UpdateWeight(context.Background(), "", decimal.NewFromFloat(1.0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListAlerts
// ──────────────────────────────────────────────────────────────────────────────

func TestListAlerts_EstanteInexistenteRetornaNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(5.0)

	_, err := uc.ListAlerts("estante-fantasma", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAlerts_DevuelveHistorialCompleto(t *testing.T) {
	uc, _, _ := newTestUseCase(5.0)
	ctx := context.Background()

	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(2.0)))
	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(7.0)))
	require.NoError(t, uc.UpdateWeight(ctx, estanteA, decimal.NewFromFloat(1.0)))

	alerts, err := uc.ListAlerts(estanteA, 20, 0)
	require.NoError(t, err)
	assert.Len(t, alerts, 2, "el historial incluye resueltas y abiertas")
}

// ──────────────────────────────────────────────────────────────────────────────
// ListStock
// ──────────────────────────────────────────────────────────────────────────────

func TestListStock_DevuelveSoloElEstantePedido(t *testing.T) {
	uc, _, _, storeStockRepo := newTestUseCaseConStock(5.0)
	require.NoError(t, storeStockRepo.IncrementBy("prod-1", estanteA, 4))
	require.NoError(t, storeStockRepo.IncrementBy("prod-2", estanteA, 1))
	require.NoError(t, storeStockRepo.IncrementBy("prod-1", "otro-estante", 9))

	rows, err := uc.ListStock(estanteA)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, estanteA, row.ShelfID)
	}
}

func TestListStock_EstanteVacioDevuelveListaVacia(t *testing.T) {
	uc, _, _, _ := newTestUseCaseConStock(5.0)

	rows, err := uc.ListStock(estanteA)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListStock_EstanteInexistenteRetornaNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(5.0)

	_, err := uc.ListStock("estante-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ListStock("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/usecase"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

type memStatsRepo struct {
	stats repository.InventoryStats
}

func (r *memStatsRepo) Totals() (*repository.InventoryStats, error) {
	return &r.stats, nil
}

// memEventRepo recuerda el limit pedido para verificar la normalización.
type memEventRepo struct {
	lastLimit int
}

func (r *memEventRepo) Create(*entity.RfidEvent) error { return nil }
func (r *memEventRepo) ListRecent(limit int) ([]*entity.RfidEvent, error) {
	r.lastLimit = limit
	return nil, nil
}
func (r *memEventRepo) ListRecentWithProduct(limit int) ([]*entity.RfidEventWithProduct, error) {
	r.lastLimit = limit
	return nil, nil
}

func TestStats_DevuelveTotales(t *testing.T) {
	statsRepo := &memStatsRepo{stats: repository.InventoryStats{
		TotalProducts:   12,
		TotalStock:      340,
		TotalStoreStock: 58,
		LowStockShelves: 2,
	}}
	uc := usecase.NewDashboardUseCase(statsRepo, &memEventRepo{})

	s, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 12, s.TotalProducts)
	assert.Equal(t, 2, s.LowStockShelves)
}

func TestRecentEvents_NormalizaLimit(t *testing.T) {
	eventRepo := &memEventRepo{}
	uc := usecase.NewDashboardUseCase(&memStatsRepo{}, eventRepo)

	_, err := uc.RecentEvents(0)
	require.NoError(t, err)
	assert.Equal(t, 20, eventRepo.lastLimit, "limit <= 0 usa el default")

	_, err = uc.RecentEvents(500)
	require.NoError(t, err)
	assert.Equal(t, 100, eventRepo.lastLimit, "limit excesivo se recorta al máximo")

	_, err = uc.RecentEventsWithProduct(35)
	require.NoError(t, err)
	assert.Equal(t, 35, eventRepo.lastLimit, "limit dentro de rango pasa sin cambios")
}

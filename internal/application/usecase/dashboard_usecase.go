package usecase

import (
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

// DashboardUseCase lecturas agregadas para el dashboard de administración:
// totales del inventario y últimos eventos RFID.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
	eventRepo repository.RfidEventRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository, eventRepo repository.RfidEventRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo, eventRepo: eventRepo}
}

// Stats devuelve los totales del inventario.
func (uc *DashboardUseCase) Stats() (*repository.InventoryStats, error) {
	return uc.statsRepo.Totals()
}

// RecentEvents devuelve los últimos eventos del log. Limit fuera de rango se normaliza.
func (uc *DashboardUseCase) RecentEvents(limit int) ([]*entity.RfidEvent, error) {
	return uc.eventRepo.ListRecent(normalizeLimit(limit))
}

// RecentEventsWithProduct devuelve los últimos eventos con nombre de producto.
func (uc *DashboardUseCase) RecentEventsWithProduct(limit int) ([]*entity.RfidEventWithProduct, error) {
	return uc.eventRepo.ListRecentWithProduct(normalizeLimit(limit))
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

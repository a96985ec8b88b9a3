package repository

// InventoryStats totales agregados para el dashboard de administración.
type InventoryStats struct {
	TotalProducts   int
	TotalStock      int
	TotalStoreStock int
	LowStockShelves int // estantes con alerta OPEN
}

// StatsRepository define el puerto de lectura de agregados del inventario.
type StatsRepository interface {
	Totals() (*InventoryStats, error)
}

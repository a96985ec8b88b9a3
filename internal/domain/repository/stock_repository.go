package repository

import "github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"

// StockRepository define el puerto para el libro de bodega central.
// Las mutaciones son atómicas a nivel de fila: IncrementBy es un upsert con
// delta (crea la fila si no existe) y DecrementIfEnough es un update
// condicional (quantity >= qty) que reporta si afectó la fila. Nunca se
// expone una escritura directa de quantity leída previamente.
type StockRepository interface {
	Get(productID string) (*entity.Stock, error)
	IncrementBy(productID string, qty int) error
	// DecrementIfEnough devuelve false (sin error) cuando la cantidad
	// disponible es menor que qty y la fila queda intacta.
	DecrementIfEnough(productID string, qty int) (bool, error)
}

// seed aplica el esquema de base de datos y carga datos de demostración:
// un par de estanterías con umbral mínimo y un catálogo de productos de ejemplo.
//
// Uso: go run ./cmd/seed
// La conexión se toma de la configuración (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/infrastructure/postgres"
	"github.com/iheb2023-web/Inventaire-IoT/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Simple protocol: el esquema trae varias sentencias en un solo string.
	if _, err := pool.Exec(ctx, postgres.Schema, pgx.QueryExecModeSimpleProtocol); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema aplicado")

	shelfRepo := postgres.NewShelfRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	shelves := []entity.Shelf{
		{ID: uuid.NewString(), Label: "Estantería A1", MinThreshold: decimal.NewFromFloat(5.0)},
		{ID: uuid.NewString(), Label: "Estantería B2", MinThreshold: decimal.NewFromFloat(3.5)},
	}
	for _, s := range shelves {
		s.CurrentWeight = decimal.Zero
		if err := shelfRepo.Create(&s); err != nil {
			fmt.Fprintf(os.Stderr, "Crear estantería %s: %v\n", s.Label, err)
			os.Exit(1)
		}
		fmt.Printf("Estantería %s (%s)\n", s.Label, s.ID)
	}

	tag1 := "E200001D2207"
	tag2 := "E200001D2208"
	products := []entity.Product{
		{
			ID:         uuid.NewString(),
			RfidTag:    &tag1,
			Barcode:    "6191234567890",
			Name:       "Aceite de oliva 1L",
			UnitWeight: decimal.NewFromFloat(0.95),
		},
		{
			ID:         uuid.NewString(),
			RfidTag:    &tag2,
			Barcode:    "6191234567891",
			Name:       "Harina de trigo 2kg",
			UnitWeight: decimal.NewFromFloat(2.05),
		},
	}
	for _, p := range products {
		p.CreatedAt = time.Now()
		if err := productRepo.Create(&p); err != nil {
			fmt.Fprintf(os.Stderr, "Crear producto %s: %v\n", p.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Producto %s (%s)\n", p.Name, p.ID)
	}

	fmt.Println("Datos de demostración cargados")
}

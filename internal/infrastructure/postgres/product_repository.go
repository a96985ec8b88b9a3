package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Barcode y rfid_tag tienen constraint único:
// un duplicado se reporta como ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, rfid_tag, barcode, name, description, unit_weight, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.RfidTag, product.Barcode, product.Name,
		product.Description, product.UnitWeight, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy(`id = $1`, id)
}

// GetByRfidTag obtiene un producto por su tag RFID. Devuelve (nil, nil) si no existe:
// el caller interpreta la ausencia como producto nuevo por registrar.
func (r *ProductRepo) GetByRfidTag(rfidTag string) (*entity.Product, error) {
	return r.getBy(`rfid_tag = $1`, rfidTag)
}

// GetByBarcode obtiene un producto por código de barras. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	return r.getBy(`barcode = $1`, barcode)
}

func (r *ProductRepo) getBy(where string, arg any) (*entity.Product, error) {
	query := `
		SELECT id, rfid_tag, barcode, name, description, unit_weight, created_at
		FROM products WHERE ` + where
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.RfidTag, &p.Barcode, &p.Name, &p.Description, &p.UnitWeight, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación, del más reciente al más antiguo.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, rfid_tag, barcode, name, description, unit_weight, created_at
		FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.RfidTag, &p.Barcode, &p.Name, &p.Description, &p.UnitWeight, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListWithStock lista productos junto con la cantidad en bodega y la suma en estantes.
func (r *ProductRepo) ListWithStock(limit, offset int) ([]*entity.ProductWithStock, error) {
	query := `
		SELECT p.id, p.rfid_tag, p.barcode, p.name, p.description, p.unit_weight, p.created_at,
		       COALESCE(s.quantity, 0),
		       COALESCE((SELECT SUM(ss.quantity) FROM store_stock ss WHERE ss.product_id = p.id), 0)
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products with stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithStock
	for rows.Next() {
		var p entity.ProductWithStock
		if err := rows.Scan(&p.ID, &p.RfidTag, &p.Barcode, &p.Name, &p.Description, &p.UnitWeight, &p.CreatedAt,
			&p.StockQuantity, &p.StoreStockQuantity); err != nil {
			return nil, fmt.Errorf("scan product with stock: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/dto"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/entity"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// FindByRfidTag busca un producto por tag. Devuelve (nil, nil) si no existe:
// el caller lo interpreta como producto nuevo por registrar.
func (uc *ProductUseCase) FindByRfidTag(tag string) (*entity.Product, error) {
	if tag == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.productRepo.GetByRfidTag(tag)
}

// FindByBarcode busca un producto por código de barras. Ausencia no es error.
func (uc *ProductUseCase) FindByBarcode(code string) (*entity.Product, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.productRepo.GetByBarcode(code)
}

// Register registra un producto nuevo. La unicidad de barcode y rfid_tag la
// garantiza la capa de persistencia (constraint único => ErrDuplicate).
func (uc *ProductUseCase) Register(in dto.RegisterProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	var rfidTag *string
	if in.RfidTag != "" {
		rfidTag = &in.RfidTag
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		RfidTag:     rfidTag,
		Barcode:     in.Barcode,
		Name:        in.Name,
		Description: in.Description,
		UnitWeight:  in.UnitWeight,
		CreatedAt:   time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetDetail obtiene un producto por ID junto con su cantidad en bodega
// (vista de detalle del dashboard). A diferencia de los lookups por tag o
// barcode, un ID inexistente sí es un error: ErrNotFound.
func (uc *ProductUseCase) GetDetail(id string) (*entity.Product, int, error) {
	if id == "" {
		return nil, 0, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	if product == nil {
		return nil, 0, domain.ErrNotFound
	}
	stock, err := uc.stockRepo.Get(product.ID)
	if err != nil {
		return nil, 0, err
	}
	if stock == nil {
		// Producto registrado que nunca entró a bodega: cantidad cero.
		return product, 0, nil
	}
	return product, stock.Quantity, nil
}

// List lista el catálogo con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// ListWithStock lista el catálogo con cantidades de bodega y estantes.
func (uc *ProductUseCase) ListWithStock(limit, offset int) ([]*entity.ProductWithStock, error) {
	return uc.productRepo.ListWithStock(limit, offset)
}

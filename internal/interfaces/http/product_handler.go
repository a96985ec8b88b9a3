package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iheb2023-web/Inventaire-IoT/internal/application/dto"
	"github.com/iheb2023-web/Inventaire-IoT/internal/application/usecase"
	"github.com/iheb2023-web/Inventaire-IoT/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// CheckByRfid godoc
// @Summary      Buscar producto por tag RFID
// @Description  Usado por el flujo de registro: un tag desconocido devuelve NEW_PRODUCT para abrir el formulario.
// @Tags         products
// @Produce      json
// @Param        uid  path  string  true  "UID del tag RFID"
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/products/rfid/{uid} [get]
func (h *ProductHandler) CheckByRfid(c *fiber.Ctx) error {
	product, err := h.uc.FindByRfidTag(c.Params("uid"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "uid requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if product == nil {
		return c.JSON(dto.ApiResponse{Status: "NEW_PRODUCT"})
	}
	return c.JSON(dto.ApiResponse{Status: "PRODUCT_FOUND", Data: dto.ToProductResponse(product)})
}

// CheckByBarcode godoc
// @Summary      Buscar producto por código de barras
// @Tags         products
// @Produce      json
// @Param        code  path  string  true  "Código de barras"
// @Success      200   {object}  dto.ApiResponse
// @Router       /api/products/barcode/{code} [get]
func (h *ProductHandler) CheckByBarcode(c *fiber.Ctx) error {
	product, err := h.uc.FindByBarcode(c.Params("code"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if product == nil {
		return c.JSON(dto.ApiResponse{Status: "NEW_PRODUCT"})
	}
	return c.JSON(dto.ApiResponse{Status: "PRODUCT_FOUND", Data: dto.ToProductResponse(product)})
}

// Register godoc
// @Summary      Registrar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterProductRequest  true  "name, barcode, rfidTag, description, unitWeight"
// @Success      201   {object}  dto.ApiResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Register(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y barcode son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "barcode o rfidTag ya registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ApiResponse{Status: "PRODUCT_CREATED", Data: dto.ToProductResponse(product)})
}

// GetDetail godoc
// @Summary      Detalle de un producto
// @Description  Producto por ID con su cantidad en bodega.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ApiResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetDetail(c *fiber.Ctx) error {
	product, stockQty, err := h.uc.GetDetail(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto desconocido"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ApiResponse{Status: "PRODUCT_FOUND", Data: dto.ProductDetailResponse{
		ProductResponse: dto.ToProductResponse(product),
		StockQuantity:   stockQty,
	}})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite (default 20)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	products, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ToProductResponse(p))
	}
	return c.JSON(dto.ApiResponse{Status: "OK", Data: items})
}

// ListWithStock godoc
// @Summary      Listar productos con cantidades
// @Description  Catálogo con cantidad en bodega y suma de estantes, para el dashboard.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite (default 20)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/products/with-stock [get]
func (h *ProductHandler) ListWithStock(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	products, err := h.uc.ListWithStock(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.ProductWithStockResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductWithStockResponse{
			ProductResponse:    dto.ToProductResponse(&p.Product),
			StockQuantity:      p.StockQuantity,
			StoreStockQuantity: p.StoreStockQuantity,
		})
	}
	return c.JSON(dto.ApiResponse{Status: "OK", Data: items})
}

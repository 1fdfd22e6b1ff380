package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// CatalogUseCase alta y consulta de productos y bodegas. El precio de un producto existente
// solo cambia por PUT /api/inventory/{item_id}, que lo audita.
type CatalogUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, warehouses repository.WarehouseRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, warehouses: warehouses}
}

// CreateProduct crea un producto. Sin SKU se genera uno corto a partir de un UUID. Cost inicia en 0.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !domain.ValidAmount(in.Price) {
		return nil, domain.ErrInvalidInput
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = strings.ToUpper(uuid.New().String()[:8])
	}
	existing, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		SKU:         sku,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Cost:        decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListProducts lista el catálogo completo.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ListWarehouses lista las bodegas; Type es la clave que usan los traslados.
func (uc *CatalogUseCase) ListWarehouses(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WarehouseResponse{
			ID:        w.ID,
			Name:      w.Name,
			Type:      w.Type,
			Location:  w.Location,
			CreatedAt: w.CreatedAt,
		})
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		CreatedAt:   p.CreatedAt,
	}
}

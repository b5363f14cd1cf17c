package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// Valida las referencias a almacén y categoría al crear/actualizar, y la invariante
// referencial al eliminar: un producto con movimientos en el libro no se elimina.
type ProductUseCase struct {
	repo          repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	categoryRepo  repository.CategoryRepository
	movementRepo  repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.MovementRepository,
) *ProductUseCase {
	return &ProductUseCase{
		repo:          repo,
		warehouseRepo: warehouseRepo,
		categoryRepo:  categoryRepo,
		movementRepo:  movementRepo,
	}
}

// Create crea un producto. MinQuantity y UnitCost deben ser >= 0; el almacén debe
// existir y la categoría, si viene, también.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinQuantity.IsNegative() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		WarehouseID: in.WarehouseID,
		CategoryID:  in.CategoryID,
		MinQuantity: in.MinQuantity,
		UnitCost:    in.UnitCost,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza parcialmente un producto. Revalida referencias si cambian;
// ID y CreatedAt nunca cambian.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.WarehouseID != nil {
		warehouse, err := uc.warehouseRepo.GetByID(*in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, domain.ErrNotFound
		}
		product.WarehouseID = *in.WarehouseID
	}
	if in.CategoryID != nil {
		// Cadena vacía desasocia la categoría
		if *in.CategoryID != "" {
			category, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.MinQuantity != nil {
		if in.MinQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MinQuantity = *in.MinQuantity
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitCost = *in.UnitCost
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Rechaza con ConflictError("has-movements") si el libro
// todavía tiene movimientos del producto.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movementRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ConflictError{Dependency: domain.DependencyMovements}
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		WarehouseID: p.WarehouseID,
		CategoryID:  p.CategoryID,
		MinQuantity: p.MinQuantity,
		UnitCost:    p.UnitCost,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

package inventory

import (
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/internal/domain/stock"
)

// StockQueryUseCase vista derivada de lectura: producto + stock actual + valor +
// estado. Recalcula todo del libro en cada llamada; no hay stock almacenado que
// pueda quedar obsoleto. Lecturas sin mutación intermedia son idempotentes.
type StockQueryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetProductsWithStock deriva la vista completa: un elemento por producto, con
// stock, valor total y estado calculados por el motor de derivación y el
// clasificador compartidos.
func (uc *StockQueryUseCase) GetProductsWithStock() ([]dto.ProductWithStockResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	// Un solo paso por el libro, agrupado por producto
	byProduct := make(map[string][]entity.Movement, len(products))
	for _, m := range movements {
		byProduct[m.ProductID] = append(byProduct[m.ProductID], *m)
	}

	items := make([]dto.ProductWithStockResponse, 0, len(products))
	for _, p := range products {
		currentStock := stock.CurrentStock(byProduct[p.ID])
		items = append(items, dto.ProductWithStockResponse{
			ProductResponse: *toProductDTO(p),
			CurrentStock:    currentStock,
			TotalValue:      stock.TotalValue(currentStock, p.UnitCost),
			Status:          string(stock.Classify(currentStock, p.MinQuantity)),
		})
	}
	return items, nil
}

func toProductDTO(p *entity.Product) *dto.ProductResponse {
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

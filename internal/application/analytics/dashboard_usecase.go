// Package analytics contiene los casos de uso de lectura agregada para el dashboard.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/internal/domain/stock"
)

const (
	recentWindow = 7 * 24 * time.Hour // ventana de "movimientos recientes"
	recentLimit  = 10                 // últimos movimientos mostrados
)

// DashboardUseCase genera el resumen del inventario para el dashboard.
// Los conteos critical/warning y el valor total salen de la misma vista derivada
// que GetProductsWithStock; los umbrales no se reimplementan aquí.
type DashboardUseCase struct {
	stockQuery    *inventory.StockQueryUseCase
	movements     *inventory.MovementUseCase
	warehouseRepo repository.WarehouseRepository
	movementRepo  repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	stockQuery *inventory.StockQueryUseCase,
	movements *inventory.MovementUseCase,
	warehouseRepo repository.WarehouseRepository,
	movementRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		stockQuery:    stockQuery,
		movements:     movements,
		warehouseRepo: warehouseRepo,
		movementRepo:  movementRepo,
	}
}

// GetSummary construye el DashboardSummaryResponse. Es una lectura pura: se deriva
// todo del estado actual de entidades y libro, sin tocar nada.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryResponse, error) {
	withStock, err := uc.stockQuery.GetProductsWithStock()
	if err != nil {
		return nil, err
	}

	criticalCount := 0
	warningCount := 0
	totalValue := decimal.Zero
	for _, p := range withStock {
		switch stock.Status(p.Status) {
		case stock.StatusCritical:
			criticalCount++
		case stock.StatusWarning:
			warningCount++
		}
		totalValue = totalValue.Add(p.TotalValue)
	}

	totalWarehouses, err := uc.warehouseRepo.Count()
	if err != nil {
		return nil, err
	}
	recentCount, err := uc.movementRepo.CountCreatedSince(time.Now().Add(-recentWindow))
	if err != nil {
		return nil, err
	}
	recent, err := uc.movements.Recent(recentLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		TotalProducts:       len(withStock),
		TotalWarehouses:     totalWarehouses,
		CriticalCount:       criticalCount,
		WarningCount:        warningCount,
		TotalInventoryValue: totalValue,
		RecentMovementCount: recentCount,
		RecentMovements:     recent,
	}, nil
}

package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/analytics"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
)

func newDashboard(store *memory.Store) (*analytics.DashboardUseCase, *inventory.MovementUseCase) {
	movements := inventory.NewMovementUseCase(store.TxRunner(), store.Products(), store.Movements())
	stockQuery := inventory.NewStockQueryUseCase(store.Products(), store.Movements())
	return analytics.NewDashboardUseCase(stockQuery, movements, store.Warehouses(), store.Movements()), movements
}

func seedProduct(t *testing.T, store *memory.Store, warehouseID string, name string, min int64) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		WarehouseID: warehouseID,
		MinQuantity: decimal.NewFromInt(min),
		UnitCost:    decimal.NewFromInt(3),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, store.Products().Create(p))
	return p
}

func TestGetSummary_ConteosYValorTotal(t *testing.T) {
	store := memory.NewStore()
	now := time.Now()
	warehouse := &entity.Warehouse{ID: uuid.New().String(), Name: "Bodega", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Warehouses().Create(warehouse))

	dashboard, movements := newDashboard(store)
	ctx := context.Background()

	// critico: stock 2 < min 10; ok: stock 20 >= 10*1.2
	critical := seedProduct(t, store, warehouse.ID, "Crítico", 10)
	ok := seedProduct(t, store, warehouse.ID, "Sobrado", 10)
	for productID, qty := range map[string]int64{critical.ID: 2, ok.ID: 20} {
		_, err := movements.RecordEntry(ctx, dto.RecordMovementRequest{
			ProductID:  productID,
			Quantity:   decimal.NewFromInt(qty),
			OccurredAt: "2026-08-20",
		})
		require.NoError(t, err)
	}

	out, err := dashboard.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalProducts)
	assert.Equal(t, 1, out.TotalWarehouses)
	assert.Equal(t, 1, out.CriticalCount)
	assert.Equal(t, 0, out.WarningCount)
	// (2 + 20) unidades * 3 de costo unitario
	assert.True(t, out.TotalInventoryValue.Equal(decimal.NewFromInt(66)),
		"valor total = suma de stock*costo por producto, obtenido %s", out.TotalInventoryValue)
	assert.Equal(t, 2, out.RecentMovementCount)
	assert.Len(t, out.RecentMovements, 2)
}

func TestGetSummary_RecentLimitadoADiez(t *testing.T) {
	store := memory.NewStore()
	now := time.Now()
	warehouse := &entity.Warehouse{ID: uuid.New().String(), Name: "Bodega", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Warehouses().Create(warehouse))

	dashboard, movements := newDashboard(store)
	product := seedProduct(t, store, warehouse.ID, "Producto", 0)
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		_, err := movements.RecordEntry(ctx, dto.RecordMovementRequest{
			ProductID:  product.ID,
			Quantity:   decimal.NewFromInt(1),
			OccurredAt: "2026-08-20",
		})
		require.NoError(t, err)
	}

	out, err := dashboard.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 13, out.RecentMovementCount)
	assert.Len(t, out.RecentMovements, 10, "la lista de recientes se corta en 10")
}

func TestGetSummary_VentanaDeSieteDias(t *testing.T) {
	store := memory.NewStore()
	now := time.Now()
	warehouse := &entity.Warehouse{ID: uuid.New().String(), Name: "Bodega", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Warehouses().Create(warehouse))

	dashboard, _ := newDashboard(store)
	product := seedProduct(t, store, warehouse.ID, "Producto", 0)

	// Un movimiento viejo (creado hace 30 días) y uno reciente, directo al store
	require.NoError(t, store.Movements().Create(&entity.Movement{
		ID:         uuid.New().String(),
		Kind:       entity.MovementEntry,
		ProductID:  product.ID,
		Quantity:   decimal.NewFromInt(5),
		OccurredAt: now.AddDate(0, 0, -30),
		CreatedAt:  now.AddDate(0, 0, -30),
	}))
	require.NoError(t, store.Movements().Create(&entity.Movement{
		ID:         uuid.New().String(),
		Kind:       entity.MovementEntry,
		ProductID:  product.ID,
		Quantity:   decimal.NewFromInt(5),
		OccurredAt: now,
		CreatedAt:  now,
	}))

	out, err := dashboard.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 1, out.RecentMovementCount, "solo cuenta lo creado en los últimos 7 días")
	// Ambos movimientos siguen contando para el stock derivado
	assert.Len(t, out.RecentMovements, 2)
}

func TestGetSummary_LecturaIdempotente(t *testing.T) {
	store := memory.NewStore()
	now := time.Now()
	warehouse := &entity.Warehouse{ID: uuid.New().String(), Name: "Bodega", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Warehouses().Create(warehouse))

	dashboard, movements := newDashboard(store)
	product := seedProduct(t, store, warehouse.ID, "Producto", 3)
	_, err := movements.RecordEntry(context.Background(), dto.RecordMovementRequest{
		ProductID:  product.ID,
		Quantity:   decimal.NewFromInt(9),
		OccurredAt: "2026-08-20",
	})
	require.NoError(t, err)

	first, err := dashboard.GetSummary()
	require.NoError(t, err)
	second, err := dashboard.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, first.TotalProducts, second.TotalProducts)
	assert.Equal(t, first.CriticalCount, second.CriticalCount)
	assert.Equal(t, first.WarningCount, second.WarningCount)
	assert.True(t, first.TotalInventoryValue.Equal(second.TotalInventoryValue))
}

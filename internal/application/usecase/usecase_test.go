package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store       *memory.Store
	warehouses  *usecase.WarehouseUseCase
	categories  *usecase.CategoryUseCase
	products    *usecase.ProductUseCase
	movements   *inventory.MovementUseCase
	warehouseID string
	categoryID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		store:      store,
		warehouses: usecase.NewWarehouseUseCase(store.Warehouses(), store.Products()),
		categories: usecase.NewCategoryUseCase(store.Categories(), store.Products()),
		products:   usecase.NewProductUseCase(store.Products(), store.Warehouses(), store.Categories(), store.Movements()),
		movements:  inventory.NewMovementUseCase(store.TxRunner(), store.Products(), store.Movements()),
	}

	warehouse, err := f.warehouses.Create(dto.CreateWarehouseRequest{Name: "Bodega Norte"})
	require.NoError(t, err)
	f.warehouseID = warehouse.ID

	category, err := f.categories.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	f.categoryID = category.ID

	return f
}

func (f *fixture) createProduct(t *testing.T, name string) *dto.ProductResponse {
	t.Helper()
	product, err := f.products.Create(dto.CreateProductRequest{
		Name:        name,
		WarehouseID: f.warehouseID,
		CategoryID:  f.categoryID,
		MinQuantity: decimal.NewFromInt(5),
		UnitCost:    decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	return product
}

func assertConflict(t *testing.T, err error, dependency string) {
	t.Helper()
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, dependency, conflict.Dependency)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

// ──────────────────────────────────────────────────────────────────────────────
// Almacenes
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseDelete_ConProductos_Conflicto(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "Agua mineral")

	err := f.warehouses.Delete(f.warehouseID)
	assertConflict(t, err, domain.DependencyProducts)

	// El almacén sigue existiendo
	warehouse, err := f.warehouses.GetByID(f.warehouseID)
	require.NoError(t, err)
	assert.Equal(t, f.warehouseID, warehouse.ID)
}

func TestWarehouseDelete_SinProductos_Elimina(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.warehouses.Delete(f.warehouseID))

	_, err := f.warehouses.GetByID(f.warehouseID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestWarehouseUpdate_NoExiste_NotFound(t *testing.T) {
	f := newFixture(t)
	name := "Nuevo nombre"
	_, err := f.warehouses.Update("no-existe", dto.UpdateWarehouseRequest{Name: &name})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestWarehouseUpdate_Parcial(t *testing.T) {
	f := newFixture(t)
	desc := "Solo la descripción cambia"
	out, err := f.warehouses.Update(f.warehouseID, dto.UpdateWarehouseRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Bodega Norte", out.Name, "el nombre no viene en el request y no debe cambiar")
	assert.Equal(t, desc, out.Description)
}

func TestWarehouseCreate_SinNombre_Invalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.warehouses.Create(dto.CreateWarehouseRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_ConProductos_Conflicto(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "Jugo de naranja")

	err := f.categories.Delete(f.categoryID)
	assertConflict(t, err, domain.DependencyProducts)
}

func TestCategoryDelete_SinProductos_Elimina(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.categories.Delete(f.categoryID))

	_, err := f.categories.GetByID(f.categoryID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AlmacenInexistente_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.Create(dto.CreateProductRequest{
		Name:        "Producto huérfano",
		WarehouseID: "no-existe",
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProductCreate_CategoriaInexistente_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.Create(dto.CreateProductRequest{
		Name:        "Producto",
		WarehouseID: f.warehouseID,
		CategoryID:  "no-existe",
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProductCreate_SinCategoria_Permitido(t *testing.T) {
	f := newFixture(t)
	product, err := f.products.Create(dto.CreateProductRequest{
		Name:        "Sin categoría",
		WarehouseID: f.warehouseID,
	})
	require.NoError(t, err)
	assert.Empty(t, product.CategoryID)
}

func TestProductCreate_NumericosNegativos_Invalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.Create(dto.CreateProductRequest{
		Name:        "Producto",
		WarehouseID: f.warehouseID,
		MinQuantity: decimal.NewFromInt(-1),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = f.products.Create(dto.CreateProductRequest{
		Name:        "Producto",
		WarehouseID: f.warehouseID,
		UnitCost:    decimal.NewFromInt(-1),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestProductUpdate_DesasociaCategoria(t *testing.T) {
	f := newFixture(t)
	product := f.createProduct(t, "Con categoría")

	empty := ""
	out, err := f.products.Update(product.ID, dto.UpdateProductRequest{CategoryID: &empty})
	require.NoError(t, err)
	assert.Empty(t, out.CategoryID)

	// Ahora la categoría ya no tiene productos y puede eliminarse
	require.NoError(t, f.categories.Delete(f.categoryID))
}

func TestProductDelete_ConMovimientos_Conflicto(t *testing.T) {
	f := newFixture(t)
	product := f.createProduct(t, "Detergente")
	ctx := context.Background()

	entry, err := f.movements.RecordEntry(ctx, dto.RecordMovementRequest{
		ProductID:  product.ID,
		Quantity:   decimal.NewFromInt(20),
		OccurredAt: "2026-08-15",
	})
	require.NoError(t, err)

	// Bloqueado mientras el libro tenga movimientos del producto
	err = f.products.Delete(product.ID)
	assertConflict(t, err, domain.DependencyMovements)

	// Al vaciar el libro del producto, la eliminación procede
	require.NoError(t, f.movements.Delete(entry.ID))
	require.NoError(t, f.products.Delete(product.ID))

	_, err = f.products.GetByID(product.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProductDelete_NoExiste_NotFound(t *testing.T) {
	f := newFixture(t)
	assert.True(t, errors.Is(f.products.Delete("no-existe"), domain.ErrNotFound))
}

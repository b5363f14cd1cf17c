package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/analytics"
	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/stock-ledger-api/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

// buildTestApp arma la aplicación completa sobre un store en memoria y devuelve
// la app más un Bearer token válido (registrando y logueando un usuario).
func buildTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	store := memory.NewStore()

	warehouseUC := usecase.NewWarehouseUseCase(store.Warehouses(), store.Products())
	categoryUC := usecase.NewCategoryUseCase(store.Categories(), store.Products())
	productUC := usecase.NewProductUseCase(store.Products(), store.Warehouses(), store.Categories(), store.Movements())
	movementUC := inventory.NewMovementUseCase(store.TxRunner(), store.Products(), store.Movements())
	stockQuery := inventory.NewStockQueryUseCase(store.Products(), store.Movements())
	dashboardUC := analytics.NewDashboardUseCase(stockQuery, movementUC, store.Warehouses(), store.Movements())
	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "stock-ledger-test",
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WarehouseUC: warehouseUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		MovementUC:  movementUC,
		StockQuery:  stockQuery,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		Metrics:     metrics.New(),
		JWTSecret:   testJWTSecret,
	})

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	return app, "Bearer " + token
}

// doJSON lanza una petición con cuerpo JSON y devuelve status y body decodificado.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		require.NoError(t, json.NewEncoder(reqBody).Encode(payload))
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func createWarehouse(t *testing.T, app *fiber.App, token, name string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/warehouses", token, fiber.Map{"name": name})
	require.Equal(t, http.StatusCreated, status)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func createProduct(t *testing.T, app *fiber.App, token, warehouseID string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"name":         "Café molido 500g",
		"warehouse_id": warehouseID,
		"min_quantity": "10",
		"unit_cost":    "5",
	})
	require.Equal(t, http.StatusCreated, status)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func recordMovement(t *testing.T, app *fiber.App, token, kind, productID, qty string) (int, map[string]any) {
	t.Helper()
	return doJSON(t, app, http.MethodPost, "/api/movements/"+kind, token, fiber.Map{
		"product_id":  productID,
		"quantity":    qty,
		"occurred_at": "2026-08-20",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t)

	for _, path := range []string{"/api/warehouses", "/api/products", "/api/movements", "/api/dashboard/summary"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "ruta %s", path)
	}
}

func TestLogin_CredencialesInvalidas_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "test@example.com",
		"password": "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos y stock derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompleto_EntradaSalidaYVistaDeStock(t *testing.T) {
	app, token := buildTestApp(t)
	warehouseID := createWarehouse(t, app, token, "Bodega Central")
	productID := createProduct(t, app, token, warehouseID)

	status, _ := recordMovement(t, app, token, "entries", productID, "45")
	require.Equal(t, http.StatusCreated, status)
	status, _ = recordMovement(t, app, token, "exits", productID, "38")
	require.Equal(t, http.StatusCreated, status)

	// Vista derivada: 45 - 38 = 7 < min 10 → crítico, valor 35
	req := httptest.NewRequest(http.MethodGet, "/api/products/stock", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0]["current_stock"])
	assert.Equal(t, "35", items[0]["total_value"])
	assert.Equal(t, "critical", items[0]["status"])
}

func TestSalidaExcesiva_Retorna409ConDetalle(t *testing.T) {
	app, token := buildTestApp(t)
	warehouseID := createWarehouse(t, app, token, "Bodega Central")
	productID := createProduct(t, app, token, warehouseID)

	status, _ := recordMovement(t, app, token, "entries", productID, "10")
	require.Equal(t, http.StatusCreated, status)

	status, body := recordMovement(t, app, token, "exits", productID, "11")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Equal(t, "11", body["requested"])
	assert.Equal(t, "10", body["available"])
}

func TestMovimiento_ValidacionFalla_Retorna400(t *testing.T) {
	app, token := buildTestApp(t)

	// Sin product_id ni occurred_at
	status, body := doJSON(t, app, http.MethodPost, "/api/movements/entries", token, fiber.Map{
		"quantity": "5",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["code"])
}

func TestEliminarMovimiento_Retorna204(t *testing.T) {
	app, token := buildTestApp(t)
	warehouseID := createWarehouse(t, app, token, "Bodega Central")
	productID := createProduct(t, app, token, warehouseID)

	status, body := recordMovement(t, app, token, "entries", productID, "5")
	require.Equal(t, http.StatusCreated, status)
	movementID, _ := body["id"].(string)
	require.NotEmpty(t, movementID)

	req := httptest.NewRequest(http.MethodDelete, "/api/movements/"+movementID, nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante referencial en eliminaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarAlmacenConProductos_Retorna409(t *testing.T) {
	app, token := buildTestApp(t)
	warehouseID := createWarehouse(t, app, token, "Bodega Central")
	createProduct(t, app, token, warehouseID)

	req := httptest.NewRequest(http.MethodDelete, "/api/warehouses/"+warehouseID, nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "CONFLICT", body["code"])
	assert.Equal(t, "has-products", body["dependency"])
}

func TestEliminarProductoConMovimientos_Retorna409(t *testing.T) {
	app, token := buildTestApp(t)
	warehouseID := createWarehouse(t, app, token, "Bodega Central")
	productID := createProduct(t, app, token, warehouseID)

	status, _ := recordMovement(t, app, token, "entries", productID, "5")
	require.Equal(t, http.StatusCreated, status)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+productID, nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "has-movements", body["dependency"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary_Retorna200(t *testing.T) {
	app, token := buildTestApp(t)
	warehouseID := createWarehouse(t, app, token, "Bodega Central")
	productID := createProduct(t, app, token, warehouseID)

	status, _ := recordMovement(t, app, token, "entries", productID, "4")
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, float64(1), body["total_products"])
	assert.Equal(t, float64(1), body["total_warehouses"])
	assert.Equal(t, float64(1), body["critical_count"], "stock 4 < min 10")
	assert.Equal(t, float64(1), body["recent_movement_count"])
}

func TestRecursoInexistente_Retorna404(t *testing.T) {
	app, token := buildTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/warehouses/no-existe", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

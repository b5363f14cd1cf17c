package stock_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestCurrentStock_LibroVacio un producto sin movimientos tiene stock cero.
func TestCurrentStock_LibroVacio(t *testing.T) {
	got := stock.CurrentStock(nil)
	assert.True(t, got.IsZero(), "libro vacío debe derivar stock 0, obtuvo %s", got)
}

// TestCurrentStock_EntradasMenosSalidas el stock es exactamente Σentradas − Σsalidas.
func TestCurrentStock_EntradasMenosSalidas(t *testing.T) {
	movs := []entity.Movement{
		{Kind: entity.MovementEntry, Quantity: dec("10.5")},
		{Kind: entity.MovementEntry, Quantity: dec("4.25")},
		{Kind: entity.MovementExit, Quantity: dec("3.75")},
		{Kind: entity.MovementExit, Quantity: dec("1")},
	}
	got := stock.CurrentStock(movs)
	assert.True(t, got.Equal(dec("10")), "esperaba 10, obtuvo %s", got)
}

// TestCurrentStock_InterleavingsAleatorios propiedad: para cualquier intercalado de
// entradas y salidas con cantidades positivas aleatorias, el stock derivado es
// siempre Σentradas − Σsalidas y no depende del orden del libro.
func TestCurrentStock_InterleavingsAleatorios(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		n := 1 + rng.Intn(50)
		movs := make([]entity.Movement, 0, n)
		sumEntries := decimal.Zero
		sumExits := decimal.Zero
		for j := 0; j < n; j++ {
			// Cantidades con dos decimales en (0, 100], paso 0.01
			qty := decimal.New(int64(1+rng.Intn(10000)), -2)
			if rng.Intn(2) == 0 {
				movs = append(movs, entity.Movement{Kind: entity.MovementEntry, Quantity: qty})
				sumEntries = sumEntries.Add(qty)
			} else {
				movs = append(movs, entity.Movement{Kind: entity.MovementExit, Quantity: qty})
				sumExits = sumExits.Add(qty)
			}
		}
		want := sumEntries.Sub(sumExits)
		got := stock.CurrentStock(movs)
		require.True(t, got.Equal(want), "iteración %d: esperaba %s, obtuvo %s", i, want, got)

		// El orden del libro no altera la suma
		rng.Shuffle(len(movs), func(a, b int) { movs[a], movs[b] = movs[b], movs[a] })
		shuffled := stock.CurrentStock(movs)
		require.True(t, shuffled.Equal(want), "iteración %d: el orden no debe afectar la derivación", i)
	}
}

// TestTotalValue valor = stock × costo unitario, sin redondeo.
func TestTotalValue(t *testing.T) {
	got := stock.TotalValue(dec("7"), dec("5.00"))
	assert.True(t, got.Equal(dec("35.00")), "esperaba 35.00, obtuvo %s", got)

	fractional := stock.TotalValue(dec("0.03"), dec("0.01"))
	assert.True(t, fractional.Equal(dec("0.0003")), "no debe redondearse en el núcleo, obtuvo %s", fractional)
}

// TestClassify_Umbrales los umbrales exactos del clasificador con mínimo 100:
// 99 → critical, 100 → warning, 119.99 → warning, 120 → success.
func TestClassify_Umbrales(t *testing.T) {
	min := dec("100")
	cases := []struct {
		name  string
		stock string
		want  stock.Status
	}{
		{"por debajo del mínimo", "99", stock.StatusCritical},
		{"exactamente el mínimo", "100", stock.StatusWarning},
		{"justo bajo la banda", "119.99", stock.StatusWarning},
		{"límite de la banda", "120", stock.StatusSuccess},
		{"muy por encima", "500", stock.StatusSuccess},
		{"stock cero", "0", stock.StatusCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Classify(dec(tc.stock), min)
			assert.Equal(t, tc.want, got, "stock %s con mínimo %s", tc.stock, min)
		})
	}
}

// TestClassify_MinimoCero con mínimo 0 la banda de advertencia [0, 0) es vacía:
// cualquier stock no negativo clasifica como success.
func TestClassify_MinimoCero(t *testing.T) {
	min := decimal.Zero
	for _, s := range []string{"0", "0.01", "1", "1000"} {
		got := stock.Classify(dec(s), min)
		assert.Equal(t, stock.StatusSuccess, got, "mínimo 0 y stock %s debe ser success", s)
	}
}

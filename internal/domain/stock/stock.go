// Package stock contiene el motor de derivación de stock y el clasificador de estado.
// Es la única implementación de esta aritmética en todo el sistema: cualquier vista
// (por producto, dashboard, validación de salidas) debe consultar estas funciones
// en lugar de duplicar los cálculos.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// Status clasificación del stock derivado frente al umbral mínimo del producto.
type Status string

const (
	StatusCritical Status = "critical" // stock < mínimo
	StatusWarning  Status = "warning"  // mínimo <= stock < mínimo * 1.2
	StatusSuccess  Status = "success"  // stock >= mínimo * 1.2
)

// warningFactor banda de advertencia: [min, min*1.2).
var warningFactor = decimal.NewFromFloat(1.2)

// CurrentStock deriva el stock actual plegando el libro de movimientos:
// suma de entradas menos suma de salidas. Libro vacío produce cero.
// Es una función pura: no hay campo de stock almacenado en ninguna parte.
func CurrentStock(movements []entity.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		switch m.Kind {
		case entity.MovementEntry:
			total = total.Add(m.Quantity)
		case entity.MovementExit:
			total = total.Sub(m.Quantity)
		}
	}
	return total
}

// TotalValue valor del inventario de un producto: stock actual por costo unitario.
// Sin redondeo: el redondeo es asunto de presentación, no del núcleo.
func TotalValue(currentStock, unitCost decimal.Decimal) decimal.Decimal {
	return currentStock.Mul(unitCost)
}

// Classify mapea (stock actual, cantidad mínima) a un estado de severidad.
//
//	stock < min            → critical
//	min <= stock < min*1.2 → warning
//	stock >= min*1.2       → success
//
// Con min = 0 la banda de advertencia [0, 0) es vacía: todo stock no negativo
// clasifica como success.
func Classify(currentStock, minQuantity decimal.Decimal) Status {
	if currentStock.LessThan(minQuantity) {
		return StatusCritical
	}
	if currentStock.LessThan(minQuantity.Mul(warningFactor)) {
		return StatusWarning
	}
	return StatusSuccess
}

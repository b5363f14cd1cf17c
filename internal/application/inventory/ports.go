package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del store, pasando
// repositorios atados a esa transacción. Garantiza que la secuencia
// verificar-stock-y-anexar se ejecute como un paso atómico: dos salidas
// concurrentes no pueden pasar ambas la verificación y anexarse las dos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

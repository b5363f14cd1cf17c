package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/internal/domain/stock"
)

// Formato de fecha de los movimientos (occurred_at).
const dateLayout = "2006-01-02"

// MovementUseCase es la capa de invariantes frente al libro de movimientos.
// Orden de validación al registrar: estructural (cantidad > 0, fecha válida) →
// referencial (producto existe) → solo para salidas, stock derivado suficiente →
// anexar. Cualquier fallo corta la secuencia y el libro queda intacto.
//
// La secuencia referencial + stock + anexado corre dentro de TxRunner con la fila
// del producto bloqueada, para que ninguna otra mutación se intercale.
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// RecordEntry registra una entrada de stock.
func (uc *MovementUseCase) RecordEntry(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	return uc.record(ctx, entity.MovementEntry, in)
}

// RecordExit registra una salida de stock. Rechaza con InsufficientStockError si la
// salida dejaría el stock derivado en negativo.
func (uc *MovementUseCase) RecordExit(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	return uc.record(ctx, entity.MovementExit, in)
}

func (uc *MovementUseCase) record(ctx context.Context, kind string, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	// Validación estructural
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	occurredAt, err := time.Parse(dateLayout, in.OccurredAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Validación referencial, con la fila del producto bloqueada
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		// Solo salidas: derivar el stock actual del libro y comparar
		if kind == entity.MovementExit {
			movements, err := movementRepo.ListByProduct(in.ProductID)
			if err != nil {
				return err
			}
			available := stock.CurrentStock(derefMovements(movements))
			if available.LessThan(in.Quantity) {
				return &domain.InsufficientStockError{
					ProductID: in.ProductID,
					Requested: in.Quantity,
					Available: available,
				}
			}
		}

		movement := &entity.Movement{
			ID:          uuid.New().String(),
			Kind:        kind,
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			OccurredAt:  occurredAt,
			Observation: in.Observation,
			CreatedAt:   time.Now(),
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}
		created = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toMovementResponse(created, "")
	return &out, nil
}

// Delete elimina una fila del libro. Es incondicional: no se revalida el stock
// resultante; borrar la fila solo quita un término de la suma y el stock se
// recalcula hacia adelante en la próxima lectura.
func (uc *MovementUseCase) Delete(id string) error {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return err
	}
	if movement == nil {
		return domain.ErrNotFound
	}
	return uc.movementRepo.Delete(id)
}

// List lista todos los movimientos con el nombre del producto resuelto.
func (uc *MovementUseCase) List() (*dto.MovementListResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	names, err := uc.productNames()
	if err != nil {
		return nil, err
	}
	items := MovementResponses(movements, names)
	return &dto.MovementListResponse{Total: len(items), Items: items}, nil
}

// ListByProduct lista los movimientos de un producto. Falla con ErrNotFound si el
// producto no existe.
func (uc *MovementUseCase) ListByProduct(productID string) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	names := map[string]string{product.ID: product.Name}
	items := MovementResponses(movements, names)
	return &dto.MovementListResponse{Total: len(items), Items: items}, nil
}

// Recent devuelve los `limit` movimientos más recientes por fecha de creación.
func (uc *MovementUseCase) Recent(limit int) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].CreatedAt.After(movements[j].CreatedAt)
	})
	if len(movements) > limit {
		movements = movements[:limit]
	}
	names, err := uc.productNames()
	if err != nil {
		return nil, err
	}
	return MovementResponses(movements, names), nil
}

func (uc *MovementUseCase) productNames() (map[string]string, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

// MovementResponses convierte movimientos a DTOs resolviendo nombres de producto.
func MovementResponses(movements []*entity.Movement, productNames map[string]string) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, toMovementResponse(m, productNames[m.ProductID]))
	}
	return items
}

func toMovementResponse(m *entity.Movement, productName string) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		Kind:        m.Kind,
		ProductID:   m.ProductID,
		ProductName: productName,
		Quantity:    m.Quantity,
		OccurredAt:  m.OccurredAt.Format(dateLayout),
		Observation: m.Observation,
		CreatedAt:   m.CreatedAt,
	}
}

func derefMovements(movements []*entity.Movement) []entity.Movement {
	out := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		out = append(out, *m)
	}
	return out
}

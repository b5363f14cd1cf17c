package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El libro solo conoce INSERT y DELETE; no hay UPDATE de movimientos.
type MovementRepo struct {
	db querier
}

// NewMovementRepository construye el adaptador de persistencia para el libro.
func NewMovementRepository(db querier) *MovementRepo {
	return &MovementRepo{db: db}
}

const movementColumns = `id, kind, product_id, quantity, occurred_at, observation, created_at`

// Create anexa un movimiento al libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		movement.ID, movement.Kind, movement.ProductID, movement.Quantity,
		movement.OccurredAt, movement.Observation, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Kind, &m.ProductID, &m.Quantity,
		&m.OccurredAt, &m.Observation, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Delete elimina una fila del libro.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// List lista todos los movimientos, más recientes primero.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY occurred_at DESC, created_at DESC`
	return r.queryMany(query)
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements
		WHERE product_id = $1 ORDER BY occurred_at DESC, created_at DESC`
	return r.queryMany(query, productID)
}

func (r *MovementRepo) queryMany(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.Kind, &m.ProductID, &m.Quantity,
			&m.OccurredAt, &m.Observation, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduct cuenta los movimientos que referencian un producto.
func (r *MovementRepo) CountByProduct(productID string) (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movements WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements by product: %w", err)
	}
	return count, nil
}

// CountCreatedSince cuenta los movimientos creados desde un instante.
func (r *MovementRepo) CountCreatedSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movements WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count recent movements: %w", err)
	}
	return count, nil
}

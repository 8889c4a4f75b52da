package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, owner_id, type, item_id, item_code, item_name, price, quantity, supplier, destination, customer_phone, notes, serial_numbers, date, created_at`

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
// Los movimientos son inmutables: solo insert y lectura, sin update ni delete.
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. serial_numbers se guarda como text[].
func (r *MovementRepo) Create(mov *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.OwnerID, mov.Type, mov.ItemID, mov.ItemCode, mov.ItemName,
		mov.Price, mov.Quantity, mov.Supplier, mov.Destination, mov.CustomerPhone,
		mov.Notes, mov.SerialNumbers, mov.Date, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID del dueño. (nil, nil) si no existe.
func (r *MovementRepo) GetByID(ownerID, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE owner_id = $1 AND id = $2`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, ownerID, id).Scan(
		&m.ID, &m.OwnerID, &m.Type, &m.ItemID, &m.ItemCode, &m.ItemName,
		&m.Price, &m.Quantity, &m.Supplier, &m.Destination, &m.CustomerPhone,
		&m.Notes, &m.SerialNumbers, &m.Date, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByOwner lista movimientos del dueño, más recientes primero, con filtros
// opcionales por tipo y fecha.
func (r *MovementRepo) ListByOwner(ownerID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE owner_id = $1`
	args := []any{ownerID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if !filter.Date.IsZero() {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.OwnerID, &m.Type, &m.ItemID, &m.ItemCode, &m.ItemName,
			&m.Price, &m.Quantity, &m.Supplier, &m.Destination, &m.CustomerPhone,
			&m.Notes, &m.SerialNumbers, &m.Date, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByTypeAndDate cuenta movimientos de un tipo en una fecha dada.
func (r *MovementRepo) CountByTypeAndDate(ownerID, movType string, date time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM movements WHERE owner_id = $1 AND type = $2 AND date = $3`,
		ownerID, movType, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}

// CustomerSummaries agrega salidas por teléfono de cliente. Los movimientos
// sin teléfono quedan fuera de la vista de clientes.
func (r *MovementRepo) CustomerSummaries(ownerID string) ([]repository.CustomerSummary, error) {
	query := `
		SELECT customer_phone, count(*), coalesce(sum(quantity), 0), max(date)
		FROM movements
		WHERE owner_id = $1 AND type = 'OUT' AND customer_phone <> ''
		GROUP BY customer_phone
		ORDER BY max(date) DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("customer summaries: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerSummary
	for rows.Next() {
		var s repository.CustomerSummary
		if err := rows.Scan(&s.Phone, &s.MovementCount, &s.TotalItems, &s.LastPurchaseDate); err != nil {
			return nil, fmt.Errorf("scan customer summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

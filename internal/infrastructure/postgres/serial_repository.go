package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

var _ repository.SerialRepository = (*SerialRepo)(nil)

const serialColumns = `id, owner_id, serial_number, item_id, item_code, item_name, status, purchase_date, supplier, created_at`

// SerialRepo implementación de SerialRepository sobre PostgreSQL (usable con pool o tx).
type SerialRepo struct {
	q Querier
}

// NewSerialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSerialRepository(q Querier) *SerialRepo {
	return &SerialRepo{q: q}
}

// Create persiste un registro de serie. Sin constraint único sobre
// serial_number: el registro repetido produce dos filas.
func (r *SerialRepo) Create(serial *entity.Serial) error {
	query := `
		INSERT INTO serials (` + serialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		serial.ID, serial.OwnerID, serial.SerialNumber, serial.ItemID,
		serial.ItemCode, serial.ItemName, serial.Status, serial.PurchaseDate,
		serial.Supplier, serial.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert serial: %w", err)
	}
	return nil
}

// GetByID obtiene un serial por ID del dueño.
func (r *SerialRepo) GetByID(ownerID, id string) (*entity.Serial, error) {
	query := `SELECT ` + serialColumns + ` FROM serials WHERE owner_id = $1 AND id = $2`
	var s entity.Serial
	err := r.q.QueryRow(context.Background(), query, ownerID, id).Scan(
		&s.ID, &s.OwnerID, &s.SerialNumber, &s.ItemID, &s.ItemCode, &s.ItemName,
		&s.Status, &s.PurchaseDate, &s.Supplier, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get serial: %w", err)
	}
	return &s, nil
}

// ListByOwner lista seriales del dueño, más recientes primero.
func (r *SerialRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Serial, error) {
	query := `SELECT ` + serialColumns + ` FROM serials WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list serials: %w", err)
	}
	return scanSerials(rows)
}

// ListByItem lista los seriales de un artículo.
func (r *SerialRepo) ListByItem(ownerID, itemID string) ([]*entity.Serial, error) {
	query := `SELECT ` + serialColumns + ` FROM serials WHERE owner_id = $1 AND item_id = $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list serials by item: %w", err)
	}
	return scanSerials(rows)
}

// UpdateStatus cambia el estado de ciclo de vida del serial.
func (r *SerialRepo) UpdateStatus(ownerID, id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE serials SET status = $3 WHERE owner_id = $1 AND id = $2`,
		ownerID, id, status,
	)
	if err != nil {
		return fmt.Errorf("update serial status: %w", err)
	}
	return nil
}

func scanSerials(rows pgx.Rows) ([]*entity.Serial, error) {
	defer rows.Close()
	var list []*entity.Serial
	for rows.Next() {
		var s entity.Serial
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.SerialNumber, &s.ItemID, &s.ItemCode, &s.ItemName,
			&s.Status, &s.PurchaseDate, &s.Supplier, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan serial: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

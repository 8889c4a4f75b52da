package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

const partnerColumns = `id, owner_id, code, name, ceo, type, items, credit_limit, current_credit, manager, phone, email, address, payment_terms, notes, created_at, updated_at`

// PartnerRepo implementación de PartnerRepository sobre PostgreSQL (usable con pool o tx).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// Create persiste un socio nuevo.
func (r *PartnerRepo) Create(partner *entity.Partner) error {
	query := `
		INSERT INTO partners (` + partnerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.OwnerID, partner.Code, partner.Name, partner.CEO,
		partner.Type, partner.Items, partner.CreditLimit, partner.CurrentCredit,
		partner.Manager, partner.Phone, partner.Email, partner.Address,
		partner.PaymentTerms, partner.Notes, partner.CreatedAt, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// GetByID obtiene un socio por ID del dueño.
func (r *PartnerRepo) GetByID(ownerID, id string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE owner_id = $1 AND id = $2`
	return scanPartnerRow(r.q.QueryRow(context.Background(), query, ownerID, id), "get partner")
}

// GetByName obtiene un socio por nombre exacto. Devuelve (nil, nil) si no existe.
// El nombre es la clave natural que usan los movimientos para resolver la
// contraparte; renombrar un socio desacopla su histórico.
func (r *PartnerRepo) GetByName(ownerID, name string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE owner_id = $1 AND name = $2 LIMIT 1`
	return scanPartnerRow(r.q.QueryRow(context.Background(), query, ownerID, name), "get partner by name")
}

// ListByOwner lista socios del dueño con paginación.
func (r *PartnerRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE owner_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables del socio.
func (r *PartnerRepo) Update(partner *entity.Partner) error {
	query := `
		UPDATE partners
		SET code = $3, name = $4, ceo = $5, type = $6, items = $7, credit_limit = $8,
		    current_credit = $9, manager = $10, phone = $11, email = $12, address = $13,
		    payment_terms = $14, notes = $15, updated_at = $16
		WHERE owner_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		partner.OwnerID, partner.ID, partner.Code, partner.Name, partner.CEO,
		partner.Type, partner.Items, partner.CreditLimit, partner.CurrentCredit,
		partner.Manager, partner.Phone, partner.Email, partner.Address,
		partner.PaymentTerms, partner.Notes, partner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

// AdjustCredit suma delta a current_credit en una sola sentencia y devuelve la
// fila actualizada. El incremento es atómico por fila, pero el flujo de
// registro (leer socio, luego ajustar) no usa conditional update: dos
// registros concurrentes sobre el mismo socio pueden entrelazarse.
func (r *PartnerRepo) AdjustCredit(ownerID, id string, delta decimal.Decimal) (*entity.Partner, error) {
	query := `
		UPDATE partners SET current_credit = current_credit + $3, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING ` + partnerColumns
	return scanPartnerRow(r.q.QueryRow(context.Background(), query, ownerID, id, delta), "adjust partner credit")
}

// Delete elimina un socio del dueño.
func (r *PartnerRepo) Delete(ownerID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM partners WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}

func scanPartnerRow(row pgx.Row, op string) (*entity.Partner, error) {
	var p entity.Partner
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Code, &p.Name, &p.CEO, &p.Type, &p.Items,
		&p.CreditLimit, &p.CurrentCredit, &p.Manager, &p.Phone, &p.Email,
		&p.Address, &p.PaymentTerms, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanPartner(rows pgx.Rows) (*entity.Partner, error) {
	var p entity.Partner
	if err := rows.Scan(
		&p.ID, &p.OwnerID, &p.Code, &p.Name, &p.CEO, &p.Type, &p.Items,
		&p.CreditLimit, &p.CurrentCredit, &p.Manager, &p.Phone, &p.Email,
		&p.Address, &p.PaymentTerms, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan partner: %w", err)
	}
	return &p, nil
}

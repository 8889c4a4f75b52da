package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, owner_id, code, name, category, price, main_stock, shop_stock, total, safety_stock, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo. code es único por dueño.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OwnerID, item.Code, item.Name, item.Category, item.Price,
		item.MainStock, item.ShopStock, item.Total, item.SafetyStock,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID del dueño.
func (r *ItemRepo) GetByID(ownerID, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ownerID, id), "get item")
}

// GetByCode obtiene un artículo por su código legible.
func (r *ItemRepo) GetByCode(ownerID, code string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ownerID, code), "get item by code")
}

// ListByOwner lista artículos del dueño con paginación.
func (r *ItemRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return r.scanMany(rows)
}

// ListBelowSafety lista artículos con total < safety_stock.
func (r *ItemRepo) ListBelowSafety(ownerID string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 AND total < safety_stock ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items below safety: %w", err)
	}
	return r.scanMany(rows)
}

// Update actualiza los campos editables del artículo, incluidos los
// contadores de stock (edición manual correctiva).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $3, category = $4, price = $5, main_stock = $6, shop_stock = $7,
		    total = $8, safety_stock = $9, updated_at = $10
		WHERE owner_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		item.OwnerID, item.ID, item.Name, item.Category, item.Price,
		item.MainStock, item.ShopStock, item.Total, item.SafetyStock, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateStock escribe solo los contadores de stock (usado por el libro de inventario).
func (r *ItemRepo) UpdateStock(ownerID, id string, mainStock, shopStock, total int64) error {
	query := `
		UPDATE items SET main_stock = $3, shop_stock = $4, total = $5, updated_at = now()
		WHERE owner_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, ownerID, id, mainStock, shopStock, total)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	return nil
}

// Delete elimina un artículo del dueño.
func (r *ItemRepo) Delete(ownerID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.OwnerID, &it.Code, &it.Name, &it.Category, &it.Price,
		&it.MainStock, &it.ShopStock, &it.Total, &it.SafetyStock,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

func (r *ItemRepo) scanMany(rows pgx.Rows) ([]*entity.Item, error) {
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.OwnerID, &it.Code, &it.Name, &it.Category, &it.Price,
			&it.MainStock, &it.ShopStock, &it.Total, &it.SafetyStock,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

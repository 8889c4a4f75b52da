package repository

import "github.com/partes-app/partes-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para artículos de inventario.
// Todas las operaciones están acotadas al dueño (ownerID).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(ownerID, id string) (*entity.Item, error)
	// GetByCode busca por el código legible asignado por el usuario.
	GetByCode(ownerID, code string) (*entity.Item, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Item, error)
	// ListBelowSafety lista artículos con total < safety_stock.
	ListBelowSafety(ownerID string) ([]*entity.Item, error)
	Update(item *entity.Item) error
	// UpdateStock escribe solo los contadores de stock (usado por el libro de inventario).
	UpdateStock(ownerID, id string, mainStock, shopStock, total int64) error
	Delete(ownerID, id string) error
}

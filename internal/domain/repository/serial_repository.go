package repository

import "github.com/partes-app/partes-api/internal/domain/entity"

// SerialRepository define el puerto de persistencia para números de serie.
// El registro de movimientos solo usa Create; listado y detalle son de la
// capa de presentación.
type SerialRepository interface {
	Create(serial *entity.Serial) error
	GetByID(ownerID, id string) (*entity.Serial, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Serial, error)
	ListByItem(ownerID, itemID string) ([]*entity.Serial, error)
	UpdateStatus(ownerID, id, status string) error
}

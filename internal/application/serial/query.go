package serial

import (
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
)

// Operaciones de consulta y mantenimiento usadas por la capa de presentación.
// El flujo de registro de movimientos no pasa por aquí.

// List lista los seriales del dueño con paginación.
func (r *Registry) List(ownerID string, limit, offset int) ([]*entity.Serial, error) {
	return r.serials.ListByOwner(ownerID, limit, offset)
}

// Get devuelve un serial por ID. ErrNotFound si no existe para ese dueño.
func (r *Registry) Get(ownerID, id string) (*entity.Serial, error) {
	s, err := r.serials.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// UpdateStatus cambia manualmente el estado de un serial (IN_STOCK | SOLD).
// Las salidas de inventario NO consumen seriales específicos de forma
// automática; si eso se desea, este es hoy el único camino.
func (r *Registry) UpdateStatus(ownerID, id, status string) (*entity.Serial, error) {
	if status != entity.SerialStatusInStock && status != entity.SerialStatusSold {
		return nil, domain.ErrInvalidInput
	}
	s, err := r.Get(ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := r.serials.UpdateStatus(ownerID, id, status); err != nil {
		return nil, err
	}
	s.Status = status
	return s, nil
}

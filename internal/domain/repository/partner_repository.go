package repository

import (
	"github.com/shopspring/decimal"

	"github.com/partes-app/partes-api/internal/domain/entity"
)

// PartnerRepository define el puerto de persistencia para socios comerciales.
type PartnerRepository interface {
	Create(partner *entity.Partner) error
	GetByID(ownerID, id string) (*entity.Partner, error)
	// GetByName busca por nombre exacto entre los socios del dueño.
	// Devuelve (nil, nil) si no existe.
	GetByName(ownerID, name string) (*entity.Partner, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Partner, error)
	Update(partner *entity.Partner) error
	// AdjustCredit suma delta (puede ser negativo) a current_credit y devuelve
	// el socio actualizado. Sin piso ni techo: la lectura-modificación-escritura
	// no está protegida contra actualizaciones concurrentes perdidas.
	AdjustCredit(ownerID, id string, delta decimal.Decimal) (*entity.Partner, error)
	Delete(ownerID, id string) error
}

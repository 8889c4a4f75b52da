// Package partner implementa el directorio de socios comerciales: proveedores
// y destinos con límite y saldo de crédito.
package partner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

// Nota que marca a los socios creados automáticamente desde un ingreso.
const autoRegisteredNote = "registrado automáticamente desde entradas/salidas"

// Directory expone búsqueda, auto-registro y ajuste de crédito de socios.
type Directory struct {
	partners repository.PartnerRepository
}

// New construye el directorio.
func New(partners repository.PartnerRepository) *Directory {
	return &Directory{partners: partners}
}

// FindByName busca un socio por nombre exacto entre los del dueño.
// Devuelve (nil, nil) si no existe.
func (d *Directory) FindByName(ownerID, name string) (*entity.Partner, error) {
	return d.partners.GetByName(ownerID, name)
}

// AutoRegister crea un socio con código derivado del reloj (distinguible de
// los códigos asignados por usuarios), sin límite ni saldo de crédito y con
// una nota que lo marca como creado por el sistema. No protege contra
// creación duplicada bajo llamadas concurrentes: el orquestador verifica
// existencia antes de llamar.
func (d *Directory) AutoRegister(ownerID, name string) (*entity.Partner, error) {
	now := time.Now()
	p := &entity.Partner{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Code:          autoCode(now),
		Name:          name,
		CreditLimit:   decimal.Zero,
		CurrentCredit: decimal.Zero,
		Notes:         autoRegisteredNote,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := d.partners.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AdjustCredit suma delta al saldo de crédito del socio. Sin piso ni techo:
// superar el límite de crédito se permite y solo se señala en la presentación.
func (d *Directory) AdjustCredit(ownerID, partnerID string, delta decimal.Decimal) (*entity.Partner, error) {
	p, err := d.partners.AdjustCredit(ownerID, partnerID, delta)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// autoCode genera el código AUTO-<últimos 6 dígitos de unix millis>.
func autoCode(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "AUTO-" + ms
}

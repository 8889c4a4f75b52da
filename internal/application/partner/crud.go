package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
)

// CRUD manual de socios usado por la pestaña de socios comerciales.

// Create registra un socio con los datos del formulario.
func (d *Directory) Create(ownerID string, in dto.CreatePartnerRequest) (*entity.Partner, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := d.partners.GetByName(ownerID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Partner{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Code:          in.Code,
		Name:          in.Name,
		CEO:           in.CEO,
		Type:          in.Type,
		Items:         in.Items,
		CreditLimit:   in.CreditLimit,
		CurrentCredit: in.CurrentCredit,
		Manager:       in.Manager,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		PaymentTerms:  in.PaymentTerms,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := d.partners.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get devuelve un socio por ID. ErrNotFound si no existe para ese dueño.
func (d *Directory) Get(ownerID, id string) (*entity.Partner, error) {
	p, err := d.partners.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List lista los socios del dueño con paginación.
func (d *Directory) List(ownerID string, limit, offset int) ([]*entity.Partner, error) {
	return d.partners.ListByOwner(ownerID, limit, offset)
}

// Update reemplaza los datos editables del socio.
func (d *Directory) Update(ownerID, id string, in dto.CreatePartnerRequest) (*entity.Partner, error) {
	p, err := d.Get(ownerID, id)
	if err != nil {
		return nil, err
	}
	p.Code = in.Code
	p.Name = in.Name
	p.CEO = in.CEO
	p.Type = in.Type
	p.Items = in.Items
	p.CreditLimit = in.CreditLimit
	p.CurrentCredit = in.CurrentCredit
	p.Manager = in.Manager
	p.Phone = in.Phone
	p.Email = in.Email
	p.Address = in.Address
	p.PaymentTerms = in.PaymentTerms
	p.Notes = in.Notes
	p.UpdatedAt = time.Now()
	if err := d.partners.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete elimina un socio. Los movimientos históricos conservan el nombre
// como snapshot, así que no quedan huérfanos de datos visibles.
func (d *Directory) Delete(ownerID, id string) error {
	if _, err := d.Get(ownerID, id); err != nil {
		return err
	}
	return d.partners.Delete(ownerID, id)
}

package partner

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
)

const testOwner = "00000000-0000-0000-0000-000000000001"

type memPartnerRepo struct {
	partners []*entity.Partner
}

func (r *memPartnerRepo) Create(p *entity.Partner) error {
	r.partners = append(r.partners, p)
	return nil
}

func (r *memPartnerRepo) GetByID(ownerID, id string) (*entity.Partner, error) {
	for _, p := range r.partners {
		if p.OwnerID == ownerID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPartnerRepo) GetByName(ownerID, name string) (*entity.Partner, error) {
	for _, p := range r.partners {
		if p.OwnerID == ownerID && p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPartnerRepo) ListByOwner(string, int, int) ([]*entity.Partner, error) {
	return r.partners, nil
}

func (r *memPartnerRepo) Update(*entity.Partner) error { return nil }

func (r *memPartnerRepo) AdjustCredit(ownerID, id string, delta decimal.Decimal) (*entity.Partner, error) {
	for _, p := range r.partners {
		if p.OwnerID == ownerID && p.ID == id {
			p.CurrentCredit = p.CurrentCredit.Add(delta)
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPartnerRepo) Delete(string, string) error { return nil }

func TestAutoCode(t *testing.T) {
	// 1 700 000 123 456 ms → últimos 6 dígitos
	now := time.UnixMilli(1700000123456)
	assert.Equal(t, "AUTO-123456", autoCode(now))

	// Milisegundos con menos de 6 dígitos se usan completos
	assert.Equal(t, "AUTO-999", autoCode(time.UnixMilli(999)))
}

func TestAutoRegister(t *testing.T) {
	repo := &memPartnerRepo{}
	d := New(repo)

	p, err := d.AutoRegister(testOwner, "Importadora Pacífico")
	require.NoError(t, err)

	assert.Equal(t, "Importadora Pacífico", p.Name)
	assert.Regexp(t, `^AUTO-\d{1,6}$`, p.Code)
	assert.True(t, p.CreditLimit.IsZero())
	assert.True(t, p.CurrentCredit.IsZero())
	assert.Equal(t, autoRegisteredNote, p.Notes)
	assert.Len(t, repo.partners, 1)
}

func TestAdjustCredit_Acumula(t *testing.T) {
	repo := &memPartnerRepo{partners: []*entity.Partner{{
		ID: "p-1", OwnerID: testOwner, Name: "Taller Norte",
	}}}
	d := New(repo)

	_, err := d.AdjustCredit(testOwner, "p-1", decimal.NewFromInt(1800))
	require.NoError(t, err)
	updated, err := d.AdjustCredit(testOwner, "p-1", decimal.NewFromInt(200))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(2000).Equal(updated.CurrentCredit))
}

func TestAdjustCredit_SocioInexistente(t *testing.T) {
	d := New(&memPartnerRepo{})
	_, err := d.AdjustCredit(testOwner, "no-existe", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

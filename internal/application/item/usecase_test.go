package item_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/application/item"
	"github.com/partes-app/partes-api/internal/application/live"
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
)

const testOwner = "00000000-0000-0000-0000-000000000001"

type memItemRepo struct {
	items []*entity.Item
}

func (r *memItemRepo) Create(it *entity.Item) error {
	r.items = append(r.items, it)
	return nil
}

func (r *memItemRepo) GetByID(ownerID, id string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.OwnerID == ownerID && it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) GetByCode(ownerID, code string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.OwnerID == ownerID && it.Code == code {
			return it, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) ListByOwner(string, int, int) ([]*entity.Item, error) { return r.items, nil }

func (r *memItemRepo) ListBelowSafety(ownerID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.OwnerID == ownerID && it.BelowSafety() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(*entity.Item) error { return nil }

func (r *memItemRepo) UpdateStock(string, string, int64, int64, int64) error { return nil }

func (r *memItemRepo) Delete(ownerID, id string) error {
	for i, it := range r.items {
		if it.OwnerID == ownerID && it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func newUseCase() (*item.UseCase, *memItemRepo) {
	repo := &memItemRepo{}
	return item.New(repo, live.NopBroadcaster{}), repo
}

func TestCreate_StockInicialVaABodegaPrincipal(t *testing.T) {
	uc, _ := newUseCase()

	created, err := uc.Create(testOwner, dto.CreateItemRequest{
		Code:        "SSD-1T",
		Name:        "SSD NVMe 1TB",
		Price:       decimal.NewFromInt(90),
		MainStock:   12,
		SafetyStock: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), created.MainStock)
	assert.Equal(t, int64(0), created.ShopStock)
	assert.Equal(t, int64(12), created.Total)
	assert.False(t, created.BelowSafety())
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Create(testOwner, dto.CreateItemRequest{Code: "SSD-1T", Name: "SSD"})
	require.NoError(t, err)

	_, err = uc.Create(testOwner, dto.CreateItemRequest{Code: "SSD-1T", Name: "Otro SSD"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Validacion(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Create(testOwner, dto.CreateItemRequest{Name: "sin código"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(testOwner, dto.CreateItemRequest{Code: "sin-nombre"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_RecalculaTotal(t *testing.T) {
	uc, _ := newUseCase()
	created, err := uc.Create(testOwner, dto.CreateItemRequest{Code: "SSD-1T", Name: "SSD", MainStock: 10})
	require.NoError(t, err)

	// Corrección manual: mover 4 unidades a vitrina
	updated, err := uc.Update(testOwner, created.ID, dto.UpdateItemRequest{
		Name:        "SSD",
		MainStock:   6,
		ShopStock:   4,
		SafetyStock: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), updated.Total, "total = main + shop tras la corrección")
	assert.False(t, updated.BelowSafety(), "total 10 no está bajo el umbral 8")
}

func TestDelete_ArticuloInexistente(t *testing.T) {
	uc, _ := newUseCase()
	err := uc.Delete(testOwner, "no-existe")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

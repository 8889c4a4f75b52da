package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partes-app/partes-api/internal/application/ledger"
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
)

const testOwner = "00000000-0000-0000-0000-000000000001"

type stubItemRepo struct {
	item *entity.Item
}

func (r *stubItemRepo) Create(*entity.Item) error { return nil }
func (r *stubItemRepo) GetByID(string, string) (*entity.Item, error) { return nil, nil }

func (r *stubItemRepo) GetByCode(ownerID, code string) (*entity.Item, error) {
	if r.item != nil && r.item.OwnerID == ownerID && r.item.Code == code {
		return r.item, nil
	}
	return nil, nil
}

func (r *stubItemRepo) ListByOwner(string, int, int) ([]*entity.Item, error) { return nil, nil }
func (r *stubItemRepo) ListBelowSafety(string) ([]*entity.Item, error)       { return nil, nil }
func (r *stubItemRepo) Update(*entity.Item) error                            { return nil }

func (r *stubItemRepo) UpdateStock(_, _ string, mainStock, shopStock, total int64) error {
	r.item.MainStock = mainStock
	r.item.ShopStock = shopStock
	r.item.Total = total
	return nil
}

func (r *stubItemRepo) Delete(string, string) error { return nil }

func TestApplyDelta_RecalculaTotalConShop(t *testing.T) {
	repo := &stubItemRepo{item: &entity.Item{
		ID: "i-1", OwnerID: testOwner, Code: "SSD-1T",
		MainStock: 10, ShopStock: 3, Total: 13,
	}}
	l := ledger.New(repo)

	updated, err := l.ApplyDelta(testOwner, "SSD-1T", 5)
	require.NoError(t, err)

	assert.Equal(t, int64(15), updated.MainStock)
	assert.Equal(t, int64(3), updated.ShopStock, "el delta solo toca bodega principal")
	assert.Equal(t, int64(18), updated.Total)
}

func TestApplyDelta_NoRecortaANegativo(t *testing.T) {
	// El libro no revalida: la regla de stock suficiente vive en el
	// orquestador de registro. Un delta mayor al stock deja el contador
	// en negativo.
	repo := &stubItemRepo{item: &entity.Item{
		ID: "i-1", OwnerID: testOwner, Code: "SSD-1T",
		MainStock: 2, Total: 2,
	}}
	l := ledger.New(repo)

	updated, err := l.ApplyDelta(testOwner, "SSD-1T", -5)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), updated.MainStock)
	assert.Equal(t, int64(-3), updated.Total)
}

func TestApplyDelta_ArticuloInexistente(t *testing.T) {
	l := ledger.New(&stubItemRepo{})
	_, err := l.ApplyDelta(testOwner, "NO-EXISTE", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCurrentStock(t *testing.T) {
	repo := &stubItemRepo{item: &entity.Item{
		ID: "i-1", OwnerID: testOwner, Code: "SSD-1T", MainStock: 7,
	}}
	l := ledger.New(repo)

	got, err := l.CurrentStock(testOwner, "SSD-1T")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	_, err = l.CurrentStock(testOwner, "OTRO")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

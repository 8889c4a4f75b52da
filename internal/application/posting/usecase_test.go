package posting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/application/ledger"
	"github.com/partes-app/partes-api/internal/application/live"
	"github.com/partes-app/partes-api/internal/application/partner"
	"github.com/partes-app/partes-api/internal/application/posting"
	"github.com/partes-app/partes-api/internal/application/serial"
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
	"github.com/partes-app/partes-api/pkg/logger"
)

const testOwner = "00000000-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	byCode map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{byCode: make(map[string]*entity.Item)}
	for _, it := range items {
		r.byCode[it.Code] = it
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	r.byCode[item.Code] = item
	return nil
}

func (r *fakeItemRepo) GetByID(ownerID, id string) (*entity.Item, error) {
	for _, it := range r.byCode {
		if it.OwnerID == ownerID && it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetByCode(ownerID, code string) (*entity.Item, error) {
	it, ok := r.byCode[code]
	if !ok || it.OwnerID != ownerID {
		return nil, nil
	}
	return it, nil
}

func (r *fakeItemRepo) ListByOwner(string, int, int) ([]*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) ListBelowSafety(string) ([]*entity.Item, error)      { return nil, nil }
func (r *fakeItemRepo) Update(*entity.Item) error                           { return nil }

func (r *fakeItemRepo) UpdateStock(ownerID, id string, mainStock, shopStock, total int64) error {
	for _, it := range r.byCode {
		if it.OwnerID == ownerID && it.ID == id {
			it.MainStock = mainStock
			it.ShopStock = shopStock
			it.Total = total
			return nil
		}
	}
	return nil
}

func (r *fakeItemRepo) Delete(string, string) error { return nil }

type fakeMovementRepo struct {
	created []*entity.Movement
}

func (r *fakeMovementRepo) Create(mov *entity.Movement) error {
	r.created = append(r.created, mov)
	return nil
}

func (r *fakeMovementRepo) GetByID(ownerID, id string) (*entity.Movement, error) {
	for _, m := range r.created {
		if m.OwnerID == ownerID && m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByOwner(string, repository.MovementFilter, int, int) ([]*entity.Movement, error) {
	return r.created, nil
}

func (r *fakeMovementRepo) CountByTypeAndDate(string, string, time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeMovementRepo) CustomerSummaries(string) ([]repository.CustomerSummary, error) {
	return nil, nil
}

// fakeSerialRepo registra seriales; con failAfter >= 0 la escritura número
// failAfter+1 falla, para simular un lote interrumpido a mitad.
type fakeSerialRepo struct {
	created   []*entity.Serial
	failAfter int
}

func newFakeSerialRepo() *fakeSerialRepo { return &fakeSerialRepo{failAfter: -1} }

func (r *fakeSerialRepo) Create(s *entity.Serial) error {
	if r.failAfter >= 0 && len(r.created) >= r.failAfter {
		return errors.New("escritura de serial rechazada")
	}
	r.created = append(r.created, s)
	return nil
}

func (r *fakeSerialRepo) GetByID(string, string) (*entity.Serial, error)          { return nil, nil }
func (r *fakeSerialRepo) ListByOwner(string, int, int) ([]*entity.Serial, error)  { return r.created, nil }
func (r *fakeSerialRepo) ListByItem(string, string) ([]*entity.Serial, error)     { return nil, nil }
func (r *fakeSerialRepo) UpdateStatus(string, string, string) error               { return nil }

type fakePartnerRepo struct {
	partners []*entity.Partner
}

func (r *fakePartnerRepo) Create(p *entity.Partner) error {
	r.partners = append(r.partners, p)
	return nil
}

func (r *fakePartnerRepo) GetByID(ownerID, id string) (*entity.Partner, error) {
	for _, p := range r.partners {
		if p.OwnerID == ownerID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartnerRepo) GetByName(ownerID, name string) (*entity.Partner, error) {
	for _, p := range r.partners {
		if p.OwnerID == ownerID && p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartnerRepo) ListByOwner(string, int, int) ([]*entity.Partner, error) {
	return r.partners, nil
}

func (r *fakePartnerRepo) Update(*entity.Partner) error { return nil }

func (r *fakePartnerRepo) AdjustCredit(ownerID, id string, delta decimal.Decimal) (*entity.Partner, error) {
	for _, p := range r.partners {
		if p.OwnerID == ownerID && p.ID == id {
			p.CurrentCredit = p.CurrentCredit.Add(delta)
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartnerRepo) Delete(string, string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado del orquestador bajo prueba
// ──────────────────────────────────────────────────────────────────────────────

type posterFixture struct {
	poster    *posting.Poster
	items     *fakeItemRepo
	movements *fakeMovementRepo
	serials   *fakeSerialRepo
	partners  *fakePartnerRepo
}

func newFixture(t *testing.T, items ...*entity.Item) *posterFixture {
	t.Helper()
	f := &posterFixture{
		items:     newFakeItemRepo(items...),
		movements: &fakeMovementRepo{},
		serials:   newFakeSerialRepo(),
		partners:  &fakePartnerRepo{},
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	f.poster = posting.NewPoster(
		f.items,
		f.movements,
		ledger.New(f.items),
		serial.New(f.serials),
		partner.New(f.partners),
		live.NopBroadcaster{},
		log,
	)
	return f
}

func testItem(code string, main int64, price int64) *entity.Item {
	return &entity.Item{
		ID:        "item-" + code,
		OwnerID:   testOwner,
		Code:      code,
		Name:      "SSD NVMe 1TB",
		Price:     decimal.NewFromInt(price),
		MainStock: main,
		ShopStock: 0,
		Total:     main,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_EntradaSumaStockYPersisteMovimiento(t *testing.T) {
	f := newFixture(t, testItem("SSD-1T", 10, 90))

	mov, err := f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:     entity.MovementTypeIN,
		ItemCode: "SSD-1T",
		Quantity: 5,
		Date:     "2026-08-30",
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	// Snapshot del artículo en el movimiento
	assert.Equal(t, "SSD-1T", mov.ItemCode)
	assert.Equal(t, "SSD NVMe 1TB", mov.ItemName)
	assert.True(t, decimal.NewFromInt(90).Equal(mov.Price))

	// Stock actualizado: main 10+5, total = main + shop
	it, _ := f.items.GetByCode(testOwner, "SSD-1T")
	assert.Equal(t, int64(15), it.MainStock)
	assert.Equal(t, int64(15), it.Total)

	require.Len(t, f.movements.created, 1)
}

func TestPost_EntradaConSeriales_RegistraUnoPorLinea(t *testing.T) {
	f := newFixture(t, testItem("SSD-1T", 0, 90))

	// Líneas en blanco y espacios alrededor se descartan/recortan
	_, err := f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:          entity.MovementTypeIN,
		ItemCode:      "SSD-1T",
		Quantity:      3,
		Supplier:      "Distribuidora Andina",
		SerialNumbers: "SN-001\n SN-002 \n\nSN-003\n",
	})
	require.NoError(t, err)

	require.Len(t, f.serials.created, 3)
	assert.Equal(t, "SN-002", f.serials.created[1].SerialNumber)
	for _, s := range f.serials.created {
		assert.Equal(t, entity.SerialStatusInStock, s.Status)
		assert.Equal(t, "SSD-1T", s.ItemCode)
		assert.Equal(t, "Distribuidora Andina", s.Supplier)
	}
}

func TestPost_EntradaProveedorNuevo_AutoRegistraSocio(t *testing.T) {
	f := newFixture(t, testItem("RAM-16", 0, 45))

	_, err := f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:     entity.MovementTypeIN,
		ItemCode: "RAM-16",
		Quantity: 2,
		Supplier: "Importadora Pacífico",
	})
	require.NoError(t, err)

	require.Len(t, f.partners.partners, 1)
	p := f.partners.partners[0]
	assert.Equal(t, "Importadora Pacífico", p.Name)
	assert.True(t, len(p.Code) > 5 && p.Code[:5] == "AUTO-",
		"el código de un socio auto-registrado nace del reloj con prefijo AUTO-")
	assert.True(t, p.CurrentCredit.IsZero(), "una entrada no toca crédito")
	assert.NotEmpty(t, p.Notes)

	// Segunda entrada del mismo proveedor: no se duplica
	_, err = f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:     entity.MovementTypeIN,
		ItemCode: "RAM-16",
		Quantity: 1,
		Supplier: "Importadora Pacífico",
	})
	require.NoError(t, err)
	assert.Len(t, f.partners.partners, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_SalidaDescuentaStockYAcumulaCredito(t *testing.T) {
	f := newFixture(t, testItem("GPU-4070", 10, 600))
	f.partners.partners = append(f.partners.partners, &entity.Partner{
		ID:      "p-1",
		OwnerID: testOwner,
		Name:    "Taller Norte",
	})

	_, err := f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:        entity.MovementTypeOUT,
		ItemCode:    "GPU-4070",
		Quantity:    3,
		Destination: "Taller Norte",
	})
	require.NoError(t, err)

	it, _ := f.items.GetByCode(testOwner, "GPU-4070")
	assert.Equal(t, int64(7), it.MainStock)

	// Crédito acumulado con el precio snapshot: 3 × 600
	assert.True(t, decimal.NewFromInt(1800).Equal(f.partners.partners[0].CurrentCredit),
		"el crédito debe crecer cantidad × precio del artículo")
}

func TestPost_SalidaSinStock_RechazaSinPersistir(t *testing.T) {
	f := newFixture(t, testItem("CPU-7600", 4, 220))

	mov, err := f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:        entity.MovementTypeOUT,
		ItemCode:    "CPU-7600",
		Quantity:    5,
		Destination: "Taller Norte",
	})
	require.Error(t, err)
	assert.Nil(t, mov)

	// El error tipado lleva el stock disponible y matchea el centinela
	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, int64(4), insuf.Available)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada persistió: ni movimiento ni cambio de stock
	assert.Empty(t, f.movements.created)
	it, _ := f.items.GetByCode(testOwner, "CPU-7600")
	assert.Equal(t, int64(4), it.MainStock)
}

func TestPost_SalidaDestinoSinSocio_OmiteCreditoEnSilencio(t *testing.T) {
	f := newFixture(t, testItem("PSU-750", 6, 80))

	mov, err := f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:        entity.MovementTypeOUT,
		ItemCode:    "PSU-750",
		Quantity:    2,
		Destination: "Cliente de mostrador",
	})
	// El registro completa con éxito aunque el destino no sea un socio
	require.NoError(t, err)
	require.NotNil(t, mov)

	it, _ := f.items.GetByCode(testOwner, "PSU-750")
	assert.Equal(t, int64(4), it.MainStock)
	assert.Empty(t, f.partners.partners, "una salida no auto-registra al destino")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_FalloDeSeriales_AplicaDeltaIgualYReportaError(t *testing.T) {
	f := newFixture(t, testItem("SSD-1T", 0, 90))
	f.serials.failAfter = 1 // el segundo serial falla

	mov, err := f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:          entity.MovementTypeIN,
		ItemCode:      "SSD-1T",
		Quantity:      3,
		SerialNumbers: "SN-A\nSN-B\nSN-C",
	})
	require.Error(t, err, "el primer fallo del lote debe reportarse al llamador")
	assert.Nil(t, mov)

	// Estado parcial: movimiento creado, un serial registrado y, aun así,
	// el delta de stock aplicado.
	assert.Len(t, f.movements.created, 1)
	assert.Len(t, f.serials.created, 1)
	it, _ := f.items.GetByCode(testOwner, "SSD-1T")
	assert.Equal(t, int64(3), it.MainStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y resolución
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_ArticuloInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.poster.Post(context.Background(), testOwner, dto.PostMovementRequest{
		Type:     entity.MovementTypeIN,
		ItemCode: "NO-EXISTE",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, f.movements.created)
}

func TestPost_EntradasInvalidas(t *testing.T) {
	f := newFixture(t, testItem("SSD-1T", 10, 90))

	cases := []struct {
		name string
		in   dto.PostMovementRequest
	}{
		{"tipo desconocido", dto.PostMovementRequest{Type: "TRANSFER", ItemCode: "SSD-1T", Quantity: 1}},
		{"cantidad cero", dto.PostMovementRequest{Type: entity.MovementTypeIN, ItemCode: "SSD-1T", Quantity: 0}},
		{"cantidad negativa", dto.PostMovementRequest{Type: entity.MovementTypeIN, ItemCode: "SSD-1T", Quantity: -2}},
		{"salida sin destino", dto.PostMovementRequest{Type: entity.MovementTypeOUT, ItemCode: "SSD-1T", Quantity: 1, Destination: "   "}},
		{"fecha malformada", dto.PostMovementRequest{Type: entity.MovementTypeIN, ItemCode: "SSD-1T", Quantity: 1, Date: "30/08/2026"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.poster.Post(context.Background(), testOwner, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.movements.created, "ninguna entrada inválida debe persistir nada")
}

func TestPost_SecuenciaConservaStock(t *testing.T) {
	f := newFixture(t, testItem("MB-B650", 10, 150))
	f.partners.partners = append(f.partners.partners, &entity.Partner{
		ID: "p-1", OwnerID: testOwner, Name: "Taller Norte",
	})

	steps := []dto.PostMovementRequest{
		{Type: entity.MovementTypeIN, ItemCode: "MB-B650", Quantity: 10},
		{Type: entity.MovementTypeOUT, ItemCode: "MB-B650", Quantity: 4, Destination: "Taller Norte"},
		{Type: entity.MovementTypeIN, ItemCode: "MB-B650", Quantity: 2},
		{Type: entity.MovementTypeOUT, ItemCode: "MB-B650", Quantity: 7, Destination: "Taller Norte"},
	}
	for _, s := range steps {
		_, err := f.poster.Post(context.Background(), testOwner, s)
		require.NoError(t, err)
	}

	// 10 + 10 − 4 + 2 − 7 = 11; el total sigue a main con shop en cero
	it, _ := f.items.GetByCode(testOwner, "MB-B650")
	assert.Equal(t, int64(11), it.MainStock)
	assert.Equal(t, int64(11), it.Total)
	assert.Len(t, f.movements.created, 4)
}

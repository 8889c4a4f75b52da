// Package item implementa el CRUD manual de artículos de inventario usado por
// la pestaña de inventario. Los contadores de stock los muta normalmente el
// registro de movimientos; la edición manual existe para correcciones.
package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/application/live"
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

// UseCase CRUD de artículos.
type UseCase struct {
	items repository.ItemRepository
	bus   live.Broadcaster
}

// New construye el caso de uso.
func New(items repository.ItemRepository, bus live.Broadcaster) *UseCase {
	return &UseCase{items: items, bus: bus}
}

// Create registra un artículo nuevo. El código es único por dueño; el stock
// inicial va a bodega principal y shop_stock arranca en cero.
func (uc *UseCase) Create(ownerID string, in dto.CreateItemRequest) (*entity.Item, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.items.GetByCode(ownerID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	it := &entity.Item{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Code:        in.Code,
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		MainStock:   in.MainStock,
		ShopStock:   0,
		Total:       in.MainStock,
		SafetyStock: in.SafetyStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.items.Create(it); err != nil {
		return nil, err
	}
	uc.bus.Publish(ownerID, live.CollectionItems)
	return it, nil
}

// Get devuelve un artículo por ID. ErrItemNotFound si no existe para ese dueño.
func (uc *UseCase) Get(ownerID, id string) (*entity.Item, error) {
	it, err := uc.items.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrItemNotFound
	}
	return it, nil
}

// List lista los artículos del dueño con paginación.
func (uc *UseCase) List(ownerID string, limit, offset int) ([]*entity.Item, error) {
	return uc.items.ListByOwner(ownerID, limit, offset)
}

// ListBelowSafety lista los artículos bajo su stock de seguridad.
func (uc *UseCase) ListBelowSafety(ownerID string) ([]*entity.Item, error) {
	return uc.items.ListBelowSafety(ownerID)
}

// Update edita el artículo. total se recalcula como main + shop para sostener
// el invariante incluso en correcciones manuales de stock.
func (uc *UseCase) Update(ownerID, id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	it, err := uc.Get(ownerID, id)
	if err != nil {
		return nil, err
	}
	it.Name = in.Name
	it.Category = in.Category
	it.Price = in.Price
	it.MainStock = in.MainStock
	it.ShopStock = in.ShopStock
	it.Total = in.MainStock + in.ShopStock
	it.SafetyStock = in.SafetyStock
	it.UpdatedAt = time.Now()
	if err := uc.items.Update(it); err != nil {
		return nil, err
	}
	uc.bus.Publish(ownerID, live.CollectionItems)
	return it, nil
}

// Delete elimina un artículo. El núcleo de registro nunca borra artículos;
// esto existe solo para la edición manual.
func (uc *UseCase) Delete(ownerID, id string) error {
	if _, err := uc.Get(ownerID, id); err != nil {
		return err
	}
	if err := uc.items.Delete(ownerID, id); err != nil {
		return err
	}
	uc.bus.Publish(ownerID, live.CollectionItems)
	return nil
}

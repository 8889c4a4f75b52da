// Package ledger implementa el libro de inventario: contadores de stock por
// artículo y aplicación de deltas firmados. No guarda estado entre llamadas.
package ledger

import (
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

// Ledger expone los contadores de stock sobre el repositorio de artículos.
type Ledger struct {
	items repository.ItemRepository
}

// New construye el libro de inventario.
func New(items repository.ItemRepository) *Ledger {
	return &Ledger{items: items}
}

// CurrentStock devuelve el stock de bodega principal del artículo.
// Retorna ErrItemNotFound si el código no resuelve para ese dueño.
func (l *Ledger) CurrentStock(ownerID, itemCode string) (int64, error) {
	item, err := l.items.GetByCode(ownerID, itemCode)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, domain.ErrItemNotFound
	}
	return item.MainStock, nil
}

// ApplyDelta lee el artículo, calcula newMain = mainStock + delta y escribe
// mainStock = total = newMain. No recorta a cero ni revalida: la regla de
// negocio (stock suficiente para salidas) vive en el orquestador de registro,
// no aquí. La lectura-modificación-escritura no usa compare-and-swap, así que
// dos registros concurrentes sobre el mismo artículo pueden perder una
// actualización (decisión asumida: la contención real es baja).
func (l *Ledger) ApplyDelta(ownerID, itemCode string, delta int64) (*entity.Item, error) {
	item, err := l.items.GetByCode(ownerID, itemCode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	newMain := item.MainStock + delta
	item.MainStock = newMain
	item.Total = newMain + item.ShopStock

	if err := l.items.UpdateStock(ownerID, item.ID, item.MainStock, item.ShopStock, item.Total); err != nil {
		return nil, err
	}
	return item, nil
}

// BelowSafety indica si el artículo está bajo su umbral de reposición.
func (l *Ledger) BelowSafety(item *entity.Item) bool {
	return item.BelowSafety()
}

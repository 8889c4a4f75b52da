// Package serial implementa el registro de números de serie: emite un
// registro por unidad física ingresada, ligado al movimiento de entrada y al
// artículo. No hay lecturas ni actualizaciones en el flujo de registro de
// movimientos; el listado es de la capa de presentación.
package serial

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

// Registry emite registros de serie sobre su repositorio.
type Registry struct {
	serials repository.SerialRepository
}

// New construye el registro de seriales.
func New(serials repository.SerialRepository) *Registry {
	return &Registry{serials: serials}
}

// ParseLines divide el texto multilínea de seriales: una línea por serial,
// recortada; las líneas en blanco se descartan. El orden se preserva.
func ParseLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Register crea un registro de serie con estado IN_STOCK y snapshots del
// artículo y del proveedor. No deduplica: registrar dos veces la misma cadena
// para el mismo dueño produce dos registros distintos; la deduplicación queda en manos del operador.
func (r *Registry) Register(ownerID, serialNumber string, item *entity.Item, supplier string, purchaseDate time.Time) (*entity.Serial, error) {
	s := &entity.Serial{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		SerialNumber: serialNumber,
		ItemID:       item.ID,
		ItemCode:     item.Code,
		ItemName:     item.Name,
		Status:       entity.SerialStatusInStock,
		PurchaseDate: purchaseDate,
		Supplier:     supplier,
		CreatedAt:    time.Now(),
	}
	if err := r.serials.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// RegisterBatch aplica Register una vez por cada serial de la lista, en orden.
// Cada alta es una escritura independiente: si una falla a mitad de lote quedan
// registrados los anteriores, sin reintento ni rollback. Devuelve lo que
// alcanzó a registrar junto con el primer error.
func (r *Registry) RegisterBatch(ownerID string, serialNumbers []string, item *entity.Item, supplier string, purchaseDate time.Time) ([]*entity.Serial, error) {
	registered := make([]*entity.Serial, 0, len(serialNumbers))
	for _, sn := range serialNumbers {
		s, err := r.Register(ownerID, sn, item, supplier, purchaseDate)
		if err != nil {
			return registered, err
		}
		registered = append(registered, s)
	}
	return registered, nil
}

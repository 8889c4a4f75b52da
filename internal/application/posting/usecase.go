// Package posting implementa el registro de transacciones de inventario: el
// orquestador que, ante una entrada o salida, actualiza el registro de
// movimiento, los contadores de stock del artículo, los seriales ingresados y
// el saldo de crédito del socio, en una secuencia fija y con semántica de
// fallo parcial definida.
//
// No hay commit atómico entre colecciones ni escrituras compensatorias: un
// fallo después del primer efecto persistido deja el sistema en estado
// parcial y se reporta tal cual al llamador.
package posting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/application/ledger"
	"github.com/partes-app/partes-api/internal/application/live"
	"github.com/partes-app/partes-api/internal/application/partner"
	"github.com/partes-app/partes-api/internal/application/serial"
	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
	"github.com/partes-app/partes-api/pkg/logger"
)

// Poster orquesta el registro de un movimiento contra el libro de inventario,
// el registro de seriales, el directorio de socios y la colección de movimientos.
type Poster struct {
	items     repository.ItemRepository
	movements repository.MovementRepository
	ledger    *ledger.Ledger
	serials   *serial.Registry
	partners  *partner.Directory
	bus       live.Broadcaster
	log       *logger.Logger
}

// NewPoster construye el orquestador.
func NewPoster(
	items repository.ItemRepository,
	movements repository.MovementRepository,
	ldg *ledger.Ledger,
	serials *serial.Registry,
	partners *partner.Directory,
	bus live.Broadcaster,
	log *logger.Logger,
) *Poster {
	return &Poster{
		items:     items,
		movements: movements,
		ledger:    ldg,
		serials:   serials,
		partners:  partners,
		bus:       bus,
		log:       log,
	}
}

// Post registra un movimiento. Secuencia fija:
//
//  1. Resolver el artículo por código (ErrItemNotFound si no existe; nada persiste).
//  2. Validar cantidad contra la dirección (OUT: cantidad ≤ stock actual, si no
//     InsufficientStockError con el stock disponible; nada persiste).
//  3. Crear el registro de movimiento con snapshots de nombre y precio: primer
//     efecto persistido. Si falla, el registro completo falla.
//  4. Si es IN con seriales: registrar cada serial (escrituras independientes;
//     un fallo a mitad deja seriales parciales, sin rollback).
//  5. Aplicar el delta de stock (+cantidad IN / −cantidad OUT). Este paso se
//     intenta aunque el paso 4 haya fallado.
//  6. Efecto de contraparte: IN con proveedor desconocido lo auto-registra sin
//     tocar crédito; OUT a un socio existente le suma cantidad × precio al
//     saldo; OUT a un destino sin socio se omite en silencio.
//
// El primer fallo se devuelve al llamador tras intentar el paso 5; no hay
// reintentos ni compensación.
func (p *Poster) Post(ctx context.Context, ownerID string, in dto.PostMovementRequest) (*entity.Movement, error) {
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.MovementTypeOUT && strings.TrimSpace(in.Destination) == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// 1. Resolver artículo
	item, err := p.items.GetByCode(ownerID, in.ItemCode)
	if err != nil {
		return nil, fmt.Errorf("resolver artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	// 2. Validar cantidad contra dirección. Para IN no hay cota superior.
	if in.Type == entity.MovementTypeOUT {
		current := item.MainStock
		if in.Quantity > current {
			return nil, &domain.InsufficientStockError{Available: current}
		}
	}

	// 3. Crear el registro de movimiento (primer efecto persistido)
	serialList := serial.ParseLines(in.SerialNumbers)
	mov := &entity.Movement{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Type:          in.Type,
		ItemID:        item.ID,
		ItemCode:      item.Code,
		ItemName:      item.Name,
		Price:         item.Price,
		Quantity:      in.Quantity,
		Supplier:      strings.TrimSpace(in.Supplier),
		Destination:   strings.TrimSpace(in.Destination),
		CustomerPhone: in.CustomerPhone,
		Notes:         in.Notes,
		SerialNumbers: serialList,
		Date:          date,
		CreatedAt:     time.Now(),
	}
	if err := p.movements.Create(mov); err != nil {
		return nil, fmt.Errorf("crear movimiento: %w", err)
	}
	p.bus.Publish(ownerID, live.CollectionMovements)

	// firstErr acumula el primer fallo de los pasos 4-6; los pasos posteriores
	// obligatorios se intentan igual y el error se devuelve al final.
	var firstErr error

	// 4. Seriales (solo entradas con texto de seriales no vacío)
	if in.Type == entity.MovementTypeIN && len(serialList) > 0 {
		registered, err := p.serials.RegisterBatch(ownerID, serialList, item, mov.Supplier, date)
		if err != nil {
			firstErr = fmt.Errorf("registrar seriales: %w", err)
			p.log.Warn().Err(err).
				Str("movement_id", mov.ID).
				Int("registered", len(registered)).
				Int("requested", len(serialList)).
				Msg("registro parcial de seriales; el delta de stock se aplica igual")
		}
		if len(registered) > 0 {
			p.bus.Publish(ownerID, live.CollectionSerials)
		}
	}

	// 5. Delta de stock: se intenta aunque el paso 4 haya fallado.
	delta := in.Quantity
	if in.Type == entity.MovementTypeOUT {
		delta = -delta
	}
	if _, err := p.ledger.ApplyDelta(ownerID, item.Code, delta); err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("aplicar delta de stock: %w", err)
		} else {
			p.log.Error().Err(err).Str("movement_id", mov.ID).Msg("delta de stock falló tras fallo de seriales")
		}
	} else {
		p.bus.Publish(ownerID, live.CollectionItems)
	}

	if firstErr != nil {
		// Estado parcial: movimiento creado, quizá seriales a medias. Se
		// reporta el primer fallo sin compensar (recuperación manual).
		return nil, firstErr
	}

	// 6. Efecto de contraparte, excluyente por dirección.
	if err := p.counterpartyEffect(ownerID, mov, item); err != nil {
		return nil, err
	}

	return mov, nil
}

// counterpartyEffect aplica el efecto lateral sobre el directorio de socios.
func (p *Poster) counterpartyEffect(ownerID string, mov *entity.Movement, item *entity.Item) error {
	switch {
	case mov.Type == entity.MovementTypeIN && mov.Supplier != "":
		existing, err := p.partners.FindByName(ownerID, mov.Supplier)
		if err != nil {
			return fmt.Errorf("buscar proveedor: %w", err)
		}
		if existing == nil {
			if _, err := p.partners.AutoRegister(ownerID, mov.Supplier); err != nil {
				return fmt.Errorf("auto-registrar proveedor: %w", err)
			}
			p.bus.Publish(ownerID, live.CollectionPartners)
		}
		// Las entradas no tocan crédito.

	case mov.Type == entity.MovementTypeOUT && mov.Destination != "":
		target, err := p.partners.FindByName(ownerID, mov.Destination)
		if err != nil {
			return fmt.Errorf("buscar destino: %w", err)
		}
		if target == nil {
			// Destino sin socio registrado: se omite el ajuste de crédito en
			// silencio. El registro igual completa.
			return nil
		}
		value := item.Price.Mul(decimal.NewFromInt(mov.Quantity))
		if _, err := p.partners.AdjustCredit(ownerID, target.ID, value); err != nil {
			return fmt.Errorf("ajustar crédito: %w", err)
		}
		p.bus.Publish(ownerID, live.CollectionPartners)
	}
	return nil
}

// GetMovement devuelve un movimiento por ID.
func (p *Poster) GetMovement(ownerID, id string) (*entity.Movement, error) {
	mov, err := p.movements.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// ListMovements lista movimientos con filtros de tipo y fecha.
func (p *Poster) ListMovements(ownerID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	return p.movements.ListByOwner(ownerID, filter, limit, offset)
}

// parseDate interpreta la fecha del formulario (AAAA-MM-DD); vacía = hoy.
func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}

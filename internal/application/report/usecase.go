// Package report genera el informe PDF del libro de movimientos para
// descarga desde el tablero.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/partes-app/partes-api/internal/domain"
	"github.com/partes-app/partes-api/internal/domain/entity"
	"github.com/partes-app/partes-api/internal/domain/repository"
)

// Cota de filas del informe; más allá de esto el PDF deja de ser útil.
const maxReportRows = 1000

// MovementPDFGenerator es el puerto hacia la infraestructura de PDF.
type MovementPDFGenerator interface {
	GenerateMovementsPDF(ctx context.Context, ownerName string, movements []*entity.Movement, generatedAt time.Time) ([]byte, error)
}

// UseCase arma el informe de movimientos y delega el dibujo al generador.
type UseCase struct {
	movements repository.MovementRepository
	users     repository.UserRepository
	generator MovementPDFGenerator
}

// New construye el caso de uso.
func New(movements repository.MovementRepository, users repository.UserRepository, generator MovementPDFGenerator) *UseCase {
	return &UseCase{movements: movements, users: users, generator: generator}
}

// MovementsPDF genera el PDF del histórico de movimientos del dueño, con
// filtro opcional por tipo. Devuelve los bytes y un nombre de archivo.
func (uc *UseCase) MovementsPDF(ctx context.Context, ownerID, movType string) ([]byte, string, error) {
	if movType != "" && movType != entity.MovementTypeIN && movType != entity.MovementTypeOUT {
		return nil, "", domain.ErrInvalidInput
	}
	list, err := uc.movements.ListByOwner(ownerID, repository.MovementFilter{Type: movType}, maxReportRows, 0)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar movimientos: %w", err)
	}

	ownerName := ""
	if user, err := uc.users.GetByID(ownerID); err == nil && user != nil {
		ownerName = user.Name
	}

	now := time.Now()
	pdf, err := uc.generator.GenerateMovementsPDF(ctx, ownerName, list, now)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("movimientos-%s.pdf", now.Format("20060102"))
	return pdf, filename, nil
}

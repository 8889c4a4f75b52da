package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/partes-app/partes-api/internal/application/analytics"
	"github.com/partes-app/partes-api/internal/application/auth"
	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/application/item"
	"github.com/partes-app/partes-api/internal/application/ledger"
	"github.com/partes-app/partes-api/internal/application/live"
	"github.com/partes-app/partes-api/internal/application/partner"
	"github.com/partes-app/partes-api/internal/application/posting"
	"github.com/partes-app/partes-api/internal/application/report"
	"github.com/partes-app/partes-api/internal/application/serial"
	"github.com/partes-app/partes-api/internal/domain/repository"
	infrapdf "github.com/partes-app/partes-api/internal/infrastructure/pdf"
	"github.com/partes-app/partes-api/internal/infrastructure/postgres"
	httpRouter "github.com/partes-app/partes-api/internal/interfaces/http"
	"github.com/partes-app/partes-api/pkg/config"
	"github.com/partes-app/partes-api/pkg/logger"
)

// liveSnapshotLimit acota el tamaño del snapshot que viaja por WebSocket.
const liveSnapshotLimit = 500

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	serialRepo := postgres.NewSerialRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)

	hub := live.NewHub(newLiveLoader(itemRepo, movementRepo, serialRepo, partnerRepo), log)

	ledgerUC := ledger.New(itemRepo)
	serialReg := serial.New(serialRepo)
	partnerDir := partner.New(partnerRepo)
	itemUC := item.New(itemRepo, hub)
	poster := posting.NewPoster(itemRepo, movementRepo, ledgerUC, serialReg, partnerDir, hub, log)
	dashboardUC := analytics.NewDashboardUseCase(movementRepo, itemRepo)
	reportUC := report.New(movementRepo, userRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.New(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Partes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ItemUC:      itemUC,
		Poster:      poster,
		PartnerDir:  partnerDir,
		SerialReg:   serialReg,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Hub:         hub,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newLiveLoader cablea el loader del hub con los repositorios: cada snapshot
// es el resultado completo (acotado) de la colección pedida, en el mismo
// formato que la API REST.
func newLiveLoader(
	items repository.ItemRepository,
	movements repository.MovementRepository,
	serials repository.SerialRepository,
	partners repository.PartnerRepository,
) live.Loader {
	return func(_ context.Context, ownerID, collection string) (any, error) {
		switch collection {
		case live.CollectionItems:
			list, err := items.ListByOwner(ownerID, liveSnapshotLimit, 0)
			if err != nil {
				return nil, err
			}
			return dto.NewItemResponses(list), nil
		case live.CollectionMovements:
			list, err := movements.ListByOwner(ownerID, repository.MovementFilter{}, liveSnapshotLimit, 0)
			if err != nil {
				return nil, err
			}
			return dto.NewMovementResponses(list), nil
		case live.CollectionSerials:
			list, err := serials.ListByOwner(ownerID, liveSnapshotLimit, 0)
			if err != nil {
				return nil, err
			}
			return dto.NewSerialResponses(list), nil
		case live.CollectionPartners:
			list, err := partners.ListByOwner(ownerID, liveSnapshotLimit, 0)
			if err != nil {
				return nil, err
			}
			return dto.NewPartnerResponses(list), nil
		default:
			return nil, fmt.Errorf("colección desconocida: %s", collection)
		}
	}
}

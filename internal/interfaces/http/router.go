package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/partes-app/partes-api/internal/application/analytics"
	"github.com/partes-app/partes-api/internal/application/auth"
	"github.com/partes-app/partes-api/internal/application/item"
	"github.com/partes-app/partes-api/internal/application/live"
	"github.com/partes-app/partes-api/internal/application/partner"
	"github.com/partes-app/partes-api/internal/application/posting"
	"github.com/partes-app/partes-api/internal/application/report"
	"github.com/partes-app/partes-api/internal/application/serial"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ItemUC      *item.UseCase
	Poster      *posting.Poster
	PartnerDir  *partner.Directory
	SerialReg   *serial.Registry
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.UseCase
	Hub         *live.Hub
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Vistas en vivo (valida el token en el upgrade, no en el middleware)
	liveHandler := NewLiveHandler(deps.Hub, deps.JWTSecret)
	api.Get("/live", liveHandler.Upgrade, liveHandler.Serve())

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Poster)
	movements.Post("/", movementHandler.Post)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)

	// Partners (protegido)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerDir)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id", partnerHandler.Update)
	partners.Delete("/:id", partnerHandler.Delete)

	// Serials (protegido; las altas nacen de las entradas)
	serials := protected.Group("/serials")
	serialHandler := NewSerialHandler(deps.SerialReg)
	serials.Get("/", serialHandler.List)
	serials.Get("/:id", serialHandler.GetByID)
	serials.Put("/:id/status", serialHandler.UpdateStatus)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/customers", dashboardHandler.Customers)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/movements", reportHandler.Movements)
}

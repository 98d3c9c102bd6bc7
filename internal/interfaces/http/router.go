package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uhg-tech/aura-core/internal/application/auth"
	"github.com/uhg-tech/aura-core/internal/application/ledger"
	"github.com/uhg-tech/aura-core/internal/application/usecase"
	"github.com/uhg-tech/aura-core/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ScanUC      *ledger.ScanUseCase
	DashboardUC *usecase.DashboardUseCase
	TaxFreeUC   *usecase.TaxFreeUseCase
	PartnerUC   *usecase.PartnerUseCase
	Store       *storage.Store
	System      SystemInfo
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	systemHandler := NewSystemHandler(deps.System)
	app.Get("/", systemHandler.Home)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Núcleo AURA
	aura := app.Group("/api/aura")

	scanHandler := NewScanHandler(deps.ScanUC, deps.Store)
	aura.Post("/scan/:user_id", scanHandler.Scan)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	aura.Get("/dashboard/:user_id", dashboardHandler.Dashboard)
	aura.Get("/inventory/:user_id", dashboardHandler.Inventory)
	aura.Get("/assets/:user_id", dashboardHandler.FixedAssets)

	taxFreeHandler := NewTaxFreeHandler(deps.TaxFreeUC)
	aura.Post("/tax-free", taxFreeHandler.Calculate)

	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	aura.Get("/partner/stats/:partner_id", partnerHandler.Stats)
}

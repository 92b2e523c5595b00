package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoyanovb/gradina-api/internal/application/auth"
	"github.com/stoyanovb/gradina-api/internal/application/b2b"
	"github.com/stoyanovb/gradina-api/internal/application/ports"
	"github.com/stoyanovb/gradina-api/internal/application/stock"
	"github.com/stoyanovb/gradina-api/internal/application/usecase"
	"github.com/stoyanovb/gradina-api/pkg/jwt"
)

// RouterDeps are the wired use cases the router needs.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *b2b.CompanyUseCase
	OrderUC    *b2b.OrderUseCase
	MovementUC *stock.MovementUseCase
	ProductUC  *usecase.ProductUseCase
	SettingsUC *usecase.SettingsUseCase
	AIUC       *usecase.AIUseCase
	PDFGen     ports.OrderPDFGenerator
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.CompanyUC, deps.PDFGen)
	stockHandler := NewStockHandler(deps.MovementUC)
	productHandler := NewProductHandler(deps.ProductUC)
	catalogHandler := NewCatalogHandler(deps.ProductUC, deps.SettingsUC)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	aiHandler := NewAIHandler(deps.AIUC)

	// Public
	api.Post("/auth/login", authHandler.Login)
	api.Get("/catalog", catalogHandler.Public)
	api.Post("/b2b/register", companyHandler.Register)
	api.Post("/b2b/login", companyHandler.Login)

	// B2B portal (partner token)
	b2bGroup := api.Group("/b2b", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleB2B))
	b2bGroup.Get("/catalog", catalogHandler.B2B)
	b2bGroup.Get("/me", companyHandler.Me)
	b2bGroup.Post("/orders", orderHandler.Place)
	b2bGroup.Get("/orders", orderHandler.ListOwn)
	b2bGroup.Get("/orders/:id", orderHandler.GetOwn)
	b2bGroup.Get("/orders/:id/pdf", orderHandler.DownloadOwnPDF)

	// Back office (admin or editor token)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin, jwt.RoleEditor))

	products := admin.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	stockGroup := admin.Group("/stock")
	stockGroup.Post("/movements", stockHandler.ApplyMovement)
	stockGroup.Get("/low", stockHandler.ListLow)
	// static paths before the :productId wildcard
	stockGroup.Get("/history", stockHandler.HistoryAll)
	stockGroup.Get("/:productId", stockHandler.Get)
	stockGroup.Get("/:productId/history", stockHandler.History)

	orders := admin.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/pdf", orderHandler.DownloadPDF)

	admin.Post("/ai/describe", aiHandler.DescribeProduct)

	// Admin-only surfaces
	companies := admin.Group("/companies", RequireRole(jwt.RoleAdmin))
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/:id/approve", companyHandler.Approve)
	companies.Post("/:id/reject", companyHandler.Reject)
	companies.Post("/:id/suspend", companyHandler.Suspend)
	companies.Post("/:id/reactivate", companyHandler.Reactivate)
	companies.Delete("/:id", companyHandler.Delete)

	settings := admin.Group("/settings", RequireRole(jwt.RoleAdmin))
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/auth"
	"github.com/okwaroh/twende-logistics/internal/application/onboarding"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	OnboardingUC *onboarding.UseCase
	CompanyUC    *usecase.CompanyUseCase
	AssetUC      *usecase.AssetUseCase
	DepotUC      *usecase.DepotUseCase
	CargoUC      *usecase.CargoUseCase
	RateUC       *usecase.RateUseCase
	OrderUC      *usecase.OrderUseCase
	TripUC       *usecase.TripUseCase
	DriverUC     *usecase.DriverUseCase
	JWTSecret    string
	// FriendlyEmptyLists swaps empty arrays for a message on list endpoints.
	FriendlyEmptyLists bool
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth: registration, login and the token lifecycle are public.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)

	// Company onboarding is public; everything below requires a bearer token.
	companyHandler := NewCompanyHandler(deps.OnboardingUC, deps.CompanyUC, deps.FriendlyEmptyLists)
	api.Post("/company/register/transporter", companyHandler.RegisterTransporter)
	api.Post("/company/register/cargo-owner", companyHandler.RegisterCargoOwner)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/me", authHandler.UpdateMe)

	company := protected.Group("/company")
	company.Get("/cargo-owner", companyHandler.ListCargoOwners)
	company.Get("/cargo-owner/:id", companyHandler.GetCargoOwner)
	company.Get("/transporter", companyHandler.ListTransporters)
	company.Get("/transporter/:id", companyHandler.GetTransporter)
	company.Put("/:id", companyHandler.UpdateCompany)
	company.Delete("/:id", companyHandler.DeactivateCompany)

	employeeHandler := NewEmployeeHandler(deps.OnboardingUC, deps.FriendlyEmptyLists)
	company.Get("/employees", employeeHandler.List)
	company.Post("/employees", employeeHandler.Create)
	company.Get("/employee/:id", employeeHandler.Get)
	company.Put("/employee/:id", employeeHandler.Update)
	company.Delete("/employee/:id", employeeHandler.Remove)

	assetHandler := NewAssetHandler(deps.AssetUC, deps.FriendlyEmptyLists)
	assets := protected.Group("/assets")
	assets.Get("/truck", assetHandler.ListTrucks)
	assets.Post("/truck", assetHandler.CreateTruck)
	assets.Post("/truck-csv-upload", assetHandler.ImportTrucks)
	assets.Get("/truck/:id", assetHandler.GetTruck)
	assets.Put("/truck/:id", assetHandler.UpdateTruck)
	assets.Delete("/truck/:id", assetHandler.RemoveTruck)
	assets.Get("/trailer", assetHandler.ListTrailers)
	assets.Post("/trailer", assetHandler.CreateTrailer)
	assets.Post("/trailer-csv-upload", assetHandler.ImportTrailers)
	assets.Get("/trailer/:id", assetHandler.GetTrailer)
	assets.Put("/trailer/:id", assetHandler.UpdateTrailer)
	assets.Delete("/trailer/:id", assetHandler.RemoveTrailer)

	depotHandler := NewDepotHandler(deps.DepotUC, deps.FriendlyEmptyLists)
	depots := protected.Group("/depots")
	depots.Get("/depot", depotHandler.List)
	depots.Post("/depot", depotHandler.Create)
	depots.Get("/depot/:id", depotHandler.Get)
	depots.Put("/depot/:id", depotHandler.Update)
	depots.Delete("/depot/:id", depotHandler.Remove)

	cargoHandler := NewCargoHandler(deps.CargoUC, deps.FriendlyEmptyLists)
	cargo := protected.Group("/cargo-types")
	cargo.Get("/cargo-type", cargoHandler.ListCargoTypes)
	cargo.Post("/cargo-type", cargoHandler.CreateCargoType)
	cargo.Get("/cargo-type/:id", cargoHandler.GetCargoType)
	cargo.Put("/cargo-type/:id", cargoHandler.UpdateCargoType)
	cargo.Delete("/cargo-type/:id", cargoHandler.RemoveCargoType)
	cargo.Get("/commodity", cargoHandler.ListCommodities)
	cargo.Post("/commodity", cargoHandler.CreateCommodity)
	cargo.Get("/commodity/:id", cargoHandler.GetCommodity)
	cargo.Put("/commodity/:id", cargoHandler.UpdateCommodity)
	cargo.Delete("/commodity/:id", cargoHandler.RemoveCommodity)

	rateHandler := NewRateHandler(deps.RateUC, deps.FriendlyEmptyLists)
	rates := protected.Group("/rates")
	rates.Get("/", rateHandler.List)
	rates.Post("/", rateHandler.Create)
	rates.Get("/:id", rateHandler.Get)
	rates.Put("/:id", rateHandler.Update)
	rates.Delete("/:id", rateHandler.Remove)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.FriendlyEmptyLists)
	orders := protected.Group("/orders")
	orders.Get("/orders", orderHandler.List)
	orders.Post("/orders", orderHandler.Create)
	orders.Get("/orders/:tracking_id", orderHandler.Get)
	orders.Put("/orders/:tracking_id", orderHandler.Update)
	orders.Delete("/orders/:tracking_id", orderHandler.Remove)

	tripHandler := NewTripHandler(deps.TripUC, deps.FriendlyEmptyLists)
	trips := protected.Group("/trips")
	trips.Get("/", tripHandler.List)
	trips.Post("/", tripHandler.Create)
	trips.Get("/:id", tripHandler.Get)
	trips.Put("/:id", tripHandler.Update)
	trips.Delete("/:id", tripHandler.Remove)

	driverHandler := NewDriverHandler(deps.OnboardingUC, deps.DriverUC, deps.FriendlyEmptyLists)
	transporter := protected.Group("/transporter", RequireRole(
		entity.RoleTransporterDirector, entity.RoleAdmin, entity.RoleStaff, entity.RoleSuperuser,
	))
	transporter.Get("/drivers", driverHandler.List)
	transporter.Post("/drivers", driverHandler.Create)
	transporter.Get("/driver/:id", driverHandler.Get)
	transporter.Put("/driver/:id", driverHandler.Update)
	transporter.Delete("/driver/:id", driverHandler.Remove)
}

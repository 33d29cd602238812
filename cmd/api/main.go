package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/okwaroh/twende-logistics/internal/application/actor"
	"github.com/okwaroh/twende-logistics/internal/application/auth"
	"github.com/okwaroh/twende-logistics/internal/application/onboarding"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
	"github.com/okwaroh/twende-logistics/internal/infrastructure/notify"
	"github.com/okwaroh/twende-logistics/internal/infrastructure/postgres"
	"github.com/okwaroh/twende-logistics/internal/infrastructure/redisstore"
	httpRouter "github.com/okwaroh/twende-logistics/internal/interfaces/http"
	"github.com/okwaroh/twende-logistics/pkg/config"
	"github.com/okwaroh/twende-logistics/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to Redis")
	}
	defer rdb.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	cargoOwnerRepo := postgres.NewCargoOwnerRepository(pool)
	transporterRepo := postgres.NewTransporterRepository(pool)
	truckRepo := postgres.NewTruckRepository(pool)
	trailerRepo := postgres.NewTrailerRepository(pool)
	depotRepo := postgres.NewDepotRepository(pool)
	cargoTypeRepo := postgres.NewCargoTypeRepository(pool)
	commodityRepo := postgres.NewCommodityRepository(pool)
	rateRepo := postgres.NewRateRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := actor.NewResolver(userRepo, companyRepo)
	blacklist := redisstore.NewBlacklist(rdb)
	notifier := notify.NewLogNotifier(log)

	authUC := auth.NewUseCase(userRepo, roleRepo, resolver, blacklist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		AccessMin:  cfg.JWT.AccessMin,
		RefreshMin: cfg.JWT.RefreshMin,
		Issuer:     cfg.JWT.Issuer,
	})
	onboardingUC := onboarding.NewUseCase(txRunner, userRepo, roleRepo, transporterRepo,
		notifier, onboarding.Policy{AutoActivate: cfg.Policy.OnboardingAutoActivate}, log)
	companyUC := usecase.NewCompanyUseCase(companyRepo, cargoOwnerRepo, transporterRepo, userRepo)
	assetUC := usecase.NewAssetUseCase(truckRepo, trailerRepo, transporterRepo)
	depotUC := usecase.NewDepotUseCase(depotRepo)
	cargoUC := usecase.NewCargoUseCase(cargoTypeRepo, commodityRepo, cargoOwnerRepo)
	rateUC := usecase.NewRateUseCase(rateRepo, cargoOwnerRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, commodityRepo, rateRepo, depotRepo, cargoOwnerRepo)
	tripUC := usecase.NewTripUseCase(tripRepo, orderRepo, truckRepo, depotRepo, transporterRepo)
	driverUC := usecase.NewDriverUseCase(driverRepo, userRepo, transporterRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		OnboardingUC:       onboardingUC,
		CompanyUC:          companyUC,
		AssetUC:            assetUC,
		DepotUC:            depotUC,
		CargoUC:            cargoUC,
		RateUC:             rateUC,
		OrderUC:            orderUC,
		TripUC:             tripUC,
		DriverUC:           driverUC,
		JWTSecret:          cfg.JWT.Secret,
		FriendlyEmptyLists: cfg.Policy.EmptyListMessages,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, draining server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

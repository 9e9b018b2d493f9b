package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blissful-trails/trails-api/internal/config"
	"github.com/blissful-trails/trails-api/internal/platform/mongodb"
	"github.com/blissful-trails/trails-api/internal/platform/payments"
	"github.com/blissful-trails/trails-api/internal/service"
	"github.com/blissful-trails/trails-api/internal/service/auth"
	"github.com/blissful-trails/trails-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	client *mongo.Client

	// healthCheck reports whether the database is reachable; nil means healthy.
	healthCheck func(ctx context.Context) error

	// Stores (using interfaces for proper abstraction)
	packageStore     store.PackageStore
	userStore        store.UserStore
	wishlistStore    store.WishlistStore
	guideStore       store.GuideStore
	roleRequestStore store.RoleRequestStore
	bookingStore     store.BookingStore
	storyStore       store.StoryStore

	// Service interfaces
	jwtService         auth.JWTService
	userService        service.UserService
	roleRequestService service.RoleRequestService
	bookingService     service.BookingService
	paymentService     service.PaymentService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database client that
// must be established before application initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	client *mongo.Client,
) (*application, error) {
	db := client.Database(cfg.Database.Name)

	if err := mongodb.EnsureIndexes(ctx, db, logger); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	logger.Info("Database indexes ensured", "database", cfg.Database.Name)

	stores := storeSet{
		packages:     mongodb.NewPackageStore(db),
		users:        mongodb.NewUserStore(db),
		wishlist:     mongodb.NewWishlistStore(db),
		guides:       mongodb.NewGuideStore(db),
		roleRequests: mongodb.NewRoleRequestStore(db),
		bookings:     mongodb.NewBookingStore(db),
		stories:      mongodb.NewStoryStore(db),
	}
	processor := payments.NewStripeProcessor(cfg.Payment.StripeSecretKey, nil)

	app, err := assembleApplication(cfg, logger, stores, processor)
	if err != nil {
		return nil, err
	}
	app.client = client
	app.healthCheck = func(ctx context.Context) error {
		return mongodb.Ping(ctx, client)
	}
	return app, nil
}

// storeSet groups the per-collection stores the application is built from.
type storeSet struct {
	packages     store.PackageStore
	users        store.UserStore
	wishlist     store.WishlistStore
	guides       store.GuideStore
	roleRequests store.RoleRequestStore
	bookings     store.BookingStore
	stories      store.StoryStore
}

// assembleApplication wires services on top of stores and the payment
// processor. It performs no I/O.
func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	stores storeSet,
	processor payments.IntentCreator,
) (*application, error) {
	app := &application{
		config:           cfg,
		logger:           logger,
		packageStore:     stores.packages,
		userStore:        stores.users,
		wishlistStore:    stores.wishlist,
		guideStore:       stores.guides,
		roleRequestStore: stores.roleRequests,
		bookingStore:     stores.bookings,
		storyStore:       stores.stories,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_hours", cfg.Auth.TokenLifetimeHours)

	app.userService = service.NewUserService(app.userStore, logger)
	app.roleRequestService = service.NewRoleRequestService(app.roleRequestStore, logger)
	app.bookingService = service.NewBookingService(app.bookingStore, logger)
	app.paymentService = service.NewPaymentService(processor, cfg.Payment.Currency, logger)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.client.Disconnect(ctx); err != nil {
		app.logger.Error("failed to disconnect database client", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}

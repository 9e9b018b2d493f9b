package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"

	"github.com/blissful-trails/trails-api/internal/api"
	apiMiddleware "github.com/blissful-trails/trails-api/internal/api/middleware"
	"github.com/blissful-trails/trails-api/internal/api/shared"
)

// RootMessage is the liveness text served at "/".
const RootMessage = "tourist website is running"

// healthCheckTimeout bounds the database ping behind /health.
const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
// The returned handler applies CORS for the configured front-end origins.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's stores and services
	authHandler := api.NewAuthHandler(app.jwtService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	packageHandler := api.NewPackageHandler(app.packageStore, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	wishlistHandler := api.NewWishlistHandler(app.wishlistStore, app.logger)
	guideHandler := api.NewGuideHandler(app.guideStore, app.logger)
	roleRequestHandler := api.NewRoleRequestHandler(app.roleRequestService, app.logger)
	bookingHandler := api.NewBookingHandler(app.bookingService, app.logger)
	paymentHandler := api.NewPaymentHandler(app.paymentService, app.logger)
	storyHandler := api.NewStoryHandler(app.storyStore, app.logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithText(w, r, http.StatusOK, RootMessage)
	})
	r.Get("/health", app.handleHealth)

	// Public endpoints
	r.Post("/jwt", authHandler.IssueToken)

	r.Get("/packages", packageHandler.List)
	r.Post("/packages", packageHandler.Create)
	r.Get("/packages/tour-type/{tourType}", packageHandler.ListByTourType)
	r.Get("/packages/{id}", packageHandler.Get)

	r.Get("/users", userHandler.List)
	r.Post("/users", userHandler.Register)

	r.Get("/request-to-admin", roleRequestHandler.ListByEmail)
	r.Get("/pending-requests", roleRequestHandler.ListPending)

	r.Get("/guides", guideHandler.List)

	r.Get("/bookings", bookingHandler.List)
	r.Get("/bookings-count", bookingHandler.Count)
	r.Post("/bookings", bookingHandler.Create)
	r.Delete("/bookings/{id}", bookingHandler.Delete)
	r.Patch("/bookings/{id}", bookingHandler.UpdateStatus)

	r.Post("/create-payment-intent", paymentHandler.CreateIntent)

	r.Get("/stories", storyHandler.List)
	r.Get("/stories/{id}", storyHandler.Get)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/wishlist", wishlistHandler.List)
		r.Post("/wishlist", wishlistHandler.Create)
		r.Delete("/wishlist/{id}", wishlistHandler.Delete)

		r.Post("/request-to-admin", roleRequestHandler.Submit)
		r.Get("/request-to-admin/admin", roleRequestHandler.IsAdmin)
		r.Get("/request-to-admin/guide", roleRequestHandler.IsGuide)
		r.Patch("/pending-requests", roleRequestHandler.Decide)

		r.Post("/guides", guideHandler.Create)
		r.Get("/guides/{id}", guideHandler.Get)

		r.Post("/stories", storyHandler.Create)
	})

	return app.cors(r)
}

// cors wraps h with the CORS policy for the configured front-end origins.
func (app *application) cors(h http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(app.config.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.ExposedHeaders([]string{apiMiddleware.TraceIDHeader}),
	)(h)
}

// handleHealth answers OK while the database is reachable.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.healthCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := app.healthCheck(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
	}
	shared.RespondWithText(w, r, http.StatusOK, "OK")
}

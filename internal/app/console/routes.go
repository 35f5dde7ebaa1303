// Package console собирает приложение консоли DataDrive и его маршруты.
package console

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	// Описание API для /docs
	_ "github.com/magabrotheeeer/datadrive/docs"
	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/http/handlers/auth"
	"github.com/magabrotheeeer/datadrive/internal/http/handlers/cars"
	"github.com/magabrotheeeer/datadrive/internal/http/handlers/health"
	"github.com/magabrotheeeer/datadrive/internal/http/handlers/maintenance"
	"github.com/magabrotheeeer/datadrive/internal/http/handlers/profile"
	"github.com/magabrotheeeer/datadrive/internal/http/handlers/reviews"
	settingshandler "github.com/magabrotheeeer/datadrive/internal/http/handlers/settings"
	"github.com/magabrotheeeer/datadrive/internal/http/handlers/subscriptions"
	"github.com/magabrotheeeer/datadrive/internal/http/handlers/trips"
	"github.com/magabrotheeeer/datadrive/internal/http/middlewarectx"
	settingsservice "github.com/magabrotheeeer/datadrive/internal/services/settings"
	subservice "github.com/magabrotheeeer/datadrive/internal/services/subscription"
	tripservice "github.com/magabrotheeeer/datadrive/internal/services/trip"
	"github.com/magabrotheeeer/datadrive/internal/session"
)

// RegisterRoutes регистрирует все маршруты консоли.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	sess *session.Manager,
	client *api.Client,
	subscriptionService *subservice.Service,
	tripService *tripservice.Service,
	settingsService *settingsservice.Service,
	limiter *rate.Limiter,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middlewarectx.CorrelationID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.RateLimitMiddleware(logger, limiter),
	)

	r.NotFound(middlewarectx.RedirectNotFound)
	r.MethodNotAllowed(middlewarectx.RedirectNotFound)
	r.Get(middlewarectx.NotFoundPath, middlewarectx.NotFoundPage)

	authHandler := auth.New(logger, client, sess)
	carsHandler := cars.New(logger, client, sess)
	maintenanceHandler := maintenance.New(logger, client, sess)
	subsHandler := subscriptions.New(logger, subscriptionService, sess)

	// Открытые маршруты
	r.Get(middlewarectx.LoginPath, authHandler.State)
	r.Post(middlewarectx.LoginPath, authHandler.Login)
	r.Post("/signup", authHandler.Signup)
	r.Post("/logout", authHandler.Logout)
	r.Get("/session", authHandler.State)
	r.Get("/health", health.New(logger, client.BaseURL(), sess).ServeHTTP)
	r.Get("/cars/available", carsHandler.Available)
	r.Get("/subscriptions", subsHandler.Catalogue)
	r.Get("/reviews/{plate}", reviews.New(logger, client).ByCar)
	r.Get("/details/{plate}/services", maintenanceHandler.Services)
	r.Get("/details/{plate}/damages", maintenanceHandler.Damages)

	// Маршруты с активной сессией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.Protected(sess, logger))

		profileHandler := profile.New(logger, client, subscriptionService, sess)
		r.Get("/profile", profileHandler.Get)
		r.Put("/profile/username", profileHandler.UpdateUsername)
		r.Put("/profile/full_name", profileHandler.UpdateFullName)
		r.Delete("/profile", profileHandler.Delete)

		settingsHandler := settingshandler.New(logger, settingsService, sess)
		r.Get("/settings", settingsHandler.Get)
		r.Post("/settings", settingsHandler.Create)
		r.Put("/settings", settingsHandler.Update)
		r.Put("/settings/{field}", settingsHandler.UpdateField)

		r.Get("/cars", carsHandler.List)
		r.Get("/cars/{plate}", carsHandler.Get)
		r.Get("/cars/{plate}/details", carsHandler.Details)

		tripsHandler := trips.New(logger, tripService, sess)
		r.Post("/trips/start", tripsHandler.Start)
		r.Post("/trips/stop", tripsHandler.Stop)
		r.Get("/trips/active", tripsHandler.Active)
		r.Get("/trips/preview", tripsHandler.Preview)
		r.Get("/trips", tripsHandler.List)
		r.Get("/trips/{id}", tripsHandler.Details)
		r.Post("/trips/{id}/review", tripsHandler.Review)

		r.Get("/subscriptions/active", subsHandler.Active)
		r.Post("/subscriptions/buy", subsHandler.Buy)
		r.Put("/subscriptions/cancel", subsHandler.Cancel)

		// Администрирование автопарка
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AdminOnly(sess, logger))
			r.Post("/cars", carsHandler.Add)
			r.Put("/cars/{plate}", carsHandler.Update)
			r.Put("/cars/{plate}/status", carsHandler.UpdateStatus)
			r.Delete("/cars/{plate}", carsHandler.Delete)
			r.Post("/cars/services", maintenanceHandler.AddService)
			r.Post("/cars/damages", maintenanceHandler.AddDamage)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

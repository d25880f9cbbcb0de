package routers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	frontendController *controllers.FrontendController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins(internalConfig.CORS),
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodOptions,
			constvars.MethodHead,
			constvars.MethodDelete,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", healthController.Healthz)

	router.Route("/api", func(r chi.Router) {
		r.Route("/data", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})
	})

	router.NotFound(frontendController.Serve)
}

// allowedOrigins lists the configured front-end domain followed by the
// wildcard patterns of preview deployments.
func allowedOrigins(corsConfig config.AppCORS) []string {
	origins := make([]string, 0, len(corsConfig.AllowedOriginPatterns)+1)
	if corsConfig.FrontendDomain != "" {
		origins = append(origins, corsConfig.FrontendDomain)
	}
	return append(origins, corsConfig.AllowedOriginPatterns...)
}

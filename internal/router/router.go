package router

import (
	"net/http"
	"time"

	middleware2 "activity-signup-service/pkg/middleware"

	"activity-signup-service/internal/handler"
	"activity-signup-service/web"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	RequestTimeout time.Duration
	SwaggerEnabled bool
}

func SetupRouter(
	activityHandler *handler.ActivityHandler,
	rootHandler *handler.RootHandler,
	healthHandler *handler.HealthHandler,
	opts Options,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(middleware2.MetricsMiddleware)

	// Operational endpoints
	r.Get("/health", healthHandler.Health)
	r.Head("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())
	if opts.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// Landing page
	r.Get("/", rootHandler.Root)
	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))

	// Activity directory
	r.Group(func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(chimiddleware.Timeout(opts.RequestTimeout))
		}

		r.Get("/activities", activityHandler.ListActivities)
		r.Post("/activities/{activityName}/signup", activityHandler.Signup)
	})

	return r
}

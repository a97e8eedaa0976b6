package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/til-api/internal/api"
	apiMiddleware "github.com/phrazzld/til-api/internal/api/middleware"
	"github.com/phrazzld/til-api/internal/service"
)

// setupRouter builds the HTTP handler for the application's services.
func (app *application) setupRouter() http.Handler {
	return newRouter(app.logger, app.acronymService, app.userService)
}

// newRouter creates the chi router with middleware, the /api route table and
// the health check.
func newRouter(
	logger *slog.Logger,
	acronymService service.AcronymService,
	userService service.UserService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))

	acronymHandler := api.NewAcronymHandler(acronymService, logger)
	userHandler := api.NewUserHandler(userService, logger)

	routes := append(acronymHandler.Routes(), userHandler.Routes()...)

	r.Route("/api", func(r chi.Router) {
		for _, route := range routes {
			r.Method(route.Method, route.Pattern, route.Handler)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

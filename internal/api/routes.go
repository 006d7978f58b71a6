// Package api serves shopping sessions over HTTP/JSON, with a WebSocket stream
// that pushes a fresh View after every mutation.
package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
)

// RegisterRoutes builds the router for all sessions in registry. A nil logger
// discards handler logs; request logging goes through chi's middleware.Logger.
func RegisterRoutes(registry *shopping.Registry, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{
		registry: registry,
		hub:      newHub(),
		logger:   logger.With("component", "api"),
	}

	r.Post("/api/sessions", h.createSession)

	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.getView)
		r.Delete("/", h.endSession)

		r.Post("/items", h.addItem)
		r.Post("/submit", h.submit)
		r.Delete("/items/{category}/{index}", h.deleteItem)

		r.Post("/edit", h.beginEdit)
		r.Post("/edit/commit", h.commitEdit)
		r.Delete("/edit", h.cancelEdit)

		r.Post("/clear", h.clear)
		r.Post("/sample", h.sample)
		r.Post("/import", h.importText)

		r.Get("/mealplan", h.getMealPlan)
		r.Post("/mealplan", h.addMeal)

		r.Get("/snapshots", h.listSnapshots)
		r.Put("/snapshots/{name}", h.saveSnapshot)
		r.Post("/snapshots/{name}/load", h.loadSnapshot)
		r.Delete("/snapshots/{name}", h.deleteSnapshot)

		r.Get("/aisles/{item}", h.lookupAisle)

		r.Get("/ws", h.handleWS)
	})

	return r
}

type handler struct {
	registry *shopping.Registry
	hub      *hub
	logger   *slog.Logger
}

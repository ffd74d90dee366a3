package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Get("/api/version", h.getVersion)

	router.Group(func(r chi.Router) {
		if h.settings.TokenSignKey != "" {
			r.Use(h.auth)
		}

		r.Get("/api/vault", h.getVault)
		r.Post("/api/vault/initialize", h.initializeVault)
		r.Post("/api/vault/deposit", h.depositVault)
		r.Post("/api/vault/withdraw", h.withdrawVault)

		r.Get("/api/bank", h.getBank)
		r.Post("/api/bank", h.createBank)
		r.Post("/api/bank/deposit", h.depositBank)
		r.Post("/api/bank/withdraw", h.withdrawBank)

		r.Get("/api/accounts", h.getAccounts)
		r.Get("/api/operations", h.getOperations)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

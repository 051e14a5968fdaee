package wire

import (
	"fast-food/internal/adaptor"
	"fast-food/pkg/middleware"
	"fast-food/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(tokens, log)).Post("/orders", orderHandler.Create)

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(log))

		r.Get("/", orderHandler.List)
		r.Put("/{id}/status", orderHandler.UpdateStatus)
	})
}

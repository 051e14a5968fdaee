package wire

import (
	"fast-food/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// public
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
}

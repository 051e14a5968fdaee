package wire

import (
	"fast-food/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMenu(r chi.Router, menuHandler *adaptor.MenuHandler) {
	r.Get("/menu", menuHandler.List)
}

package adaptor

import (
	"net/http"

	"fast-food/internal/usecase"
	"fast-food/pkg/utils"

	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// List handles GET /api/menu
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetMenu(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list menu")
		return
	}

	utils.ResponseSuccess(w, items)
}

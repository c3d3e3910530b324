package delete_service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
)

const msgNameRequired = "Service name is required"

type Handler struct {
	services ServiceRepository
	logger   Logger
}

func NewHandler(services ServiceRepository, logger Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Handle DELETE /api/services/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	if err := h.services.DeleteByName(r.Context(), name); err != nil {
		h.logger.Error("DELETE /services/%s - Failed to delete service: %v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

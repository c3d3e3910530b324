package delete_appointment

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
)

const msgInvalidID = "Invalid appointment id"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/appointment/{id}
//
// Удаление идемпотентно: несуществующий id тоже даёт 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointment/{id} - Invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /appointment/%d - Failed to delete appointment: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

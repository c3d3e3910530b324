package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidID          = "Invalid appointment id"
	msgMissingStatus      = "Status is required"
	msgInvalidStatus      = "Invalid status value"
	msgNotFound           = "Appointment not found"
	msgSlotTaken          = "This time slot is already booked. Please choose another time."
)

// StatusRequest тело запроса смены статуса
type StatusRequest struct {
	Status string `json:"status"`
}

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

// Handle PATCH /api/appointment/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointment/{id}/status - Invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req StatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointment/%d/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrMissingStatus):
			h.logger.Warn("PATCH /appointment/%d/status - Status missing", id)
			handlers.RespondBadRequest(w, msgMissingStatus)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointment/%d/status - Invalid status %q", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointment/%d/status - Appointment not found", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrTimeSlotTaken):
			h.logger.Warn("PATCH /appointment/%d/status - Slot taken: %v", id, err)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /appointment/%d/status - Failed to update status: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/service/appointments/models"
	updateAppointment "github.com/tigerbarber/appointment-service/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidID          = "Invalid appointment id"
	msgNotFound           = "Appointment not found"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid time format, expected HH:MM"
	msgInvalidStatus      = "Invalid status value"
	msgSlotTaken          = "This time slot is already booked. Please choose another time."
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/appointment/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointment/{id} - Invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointment/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.useCase.Execute(r.Context(), id, req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointment/%d - Not found", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrInvalidDate):
			h.logger.Warn("PATCH /appointment/%d - Invalid date: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, updateAppointment.ErrInvalidTime):
			h.logger.Warn("PATCH /appointment/%d - Invalid time: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, updateAppointment.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointment/%d - Invalid status: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateAppointment.ErrTimeSlotTaken):
			h.logger.Warn("PATCH /appointment/%d - Slot taken: %v", id, err)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /appointment/%d - Failed to update appointment: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, models.FromDomain(updated))
}

package create_appointment

import (
	"errors"
	"net/http"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/service/appointments/models"
	createAppointment "github.com/tigerbarber/appointment-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Date and time are required"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid time format, expected HH:MM"
	msgSlotTaken          = "This time slot is already booked. Please choose another time."
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrMissingFields):
			h.logger.Warn("POST /appointments - Missing date or time")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidTime):
			h.logger.Warn("POST /appointments - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createAppointment.ErrTimeSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: %v", err)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusCreated, models.FromDomain(created))
}

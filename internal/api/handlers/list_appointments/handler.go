package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/service/appointments"
	"github.com/tigerbarber/appointment-service/internal/service/appointments/models"
)

const (
	msgInvalidDate     = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidStatuses = "Invalid status filter"
	msgInvalidCapster  = "Invalid capster id"
)

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

// Handle GET /api/appointments
//
// Без параметров возвращает все записи. С email или user_id — записи
// пользователя. С date (и опционально capsterId, status) — записи на
// дату для проверки занятости слотов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if identifier := firstNonEmpty(q.Get("email"), q.Get("user_id")); identifier != "" {
		h.handleForUser(w, r, identifier)
		return
	}

	if q.Get("date") != "" {
		h.handleByDate(w, r)
		return
	}

	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

func (h *Handler) handleForUser(w http.ResponseWriter, r *http.Request, identifier string) {
	result, err := h.service.ListForUser(r.Context(), identifier)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list for user %s: %v", identifier, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

func (h *Handler) handleByDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &models.AvailabilityRequest{
		Date:     q.Get("date"),
		Statuses: splitStatuses(append(q["statuses"], q["status"]...)),
	}

	if raw := firstNonEmpty(q.Get("capsterId"), q.Get("capster_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid capster id %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCapster)
			return
		}
		req.CapsterID = &id
	}

	result, err := h.service.ListByDate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: date=%s statuses=%v", req.Date, req.Statuses)
			if len(req.Statuses) > 0 {
				handlers.RespondBadRequest(w, msgInvalidStatuses)
			} else {
				handlers.RespondBadRequest(w, msgInvalidDate)
			}
		default:
			h.logger.Error("GET /appointments - Failed to list by date %s: %v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

// splitStatuses принимает статусы и повторными параметрами, и списком
// через запятую. Канонический параметр — statuses; status оставлен как
// алиас для старых клиентов.
func splitStatuses(raw []string) []string {
	var out []string
	for _, chunk := range raw {
		for _, s := range strings.Split(chunk, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

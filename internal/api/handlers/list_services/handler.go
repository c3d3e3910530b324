package list_services

import (
	"net/http"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/domain"
)

// ServiceResponse JSON представление услуги
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Type        string  `json:"type,omitempty"`
}

func fromDomain(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Type:        s.Type,
	}
}

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

// Handle GET /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, fromDomain(s))
	}

	handlers.RespondData(w, http.StatusOK, out)
}

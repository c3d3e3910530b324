package create_service

import (
	"net/http"
	"strings"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/domain"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgNameRequired       = "Service name is required"
)

// CreateServiceRequest тело POST запроса
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Type        string  `json:"type"`
}

// ServiceResponse JSON представление услуги
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Type        string  `json:"type,omitempty"`
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

// Handle POST /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		h.logger.Warn("POST /services - Missing name")
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	created, err := h.services.Create(r.Context(), &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
	})
	if err != nil {
		h.logger.Error("POST /services - Failed to create service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusCreated, ServiceResponse{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		Price:       created.Price,
		Type:        created.Type,
	})
}

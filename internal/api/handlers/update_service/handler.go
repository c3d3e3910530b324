package update_service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/infra/storage/service"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgNameRequired       = "Service name is required"
)

// UpdateServiceRequest тело PUT запроса; отсутствующие поля не
// затрагиваются
type UpdateServiceRequest struct {
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Type        *string  `json:"type"`
}

// ServiceResponse JSON представление услуги
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Type        string  `json:"type,omitempty"`
}

// UpdateAck подтверждение обновления, когда хранилище не вернуло
// представление строки
type UpdateAck struct {
	Name    string `json:"name"`
	Updated bool   `json:"updated"`
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

// Handle PUT /api/services/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/%s - Invalid request body: %v", name, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.services.UpdateByName(r.Context(), name, service.UpdatePatch{
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
	})
	if err != nil {
		h.logger.Error("PUT /services/%s - Failed to update service: %v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	if updated == nil {
		handlers.RespondData(w, http.StatusOK, UpdateAck{Name: name, Updated: true})
		return
	}

	handlers.RespondData(w, http.StatusOK, ServiceResponse{
		ID:          updated.ID,
		Name:        updated.Name,
		Description: updated.Description,
		Price:       updated.Price,
		Type:        updated.Type,
	})
}

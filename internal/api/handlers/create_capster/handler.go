package create_capster

import (
	"net/http"
	"strings"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/domain"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgNameRequired       = "Capster name is required"
)

// CreateCapsterRequest тело POST запроса
type CreateCapsterRequest struct {
	Name        string `json:"name"`
	Alias       string `json:"alias"`
	Description string `json:"description"`
	InstaAcc    string `json:"instaAcc"`
}

// CapsterResponse JSON представление капстера
type CapsterResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Alias       string `json:"alias,omitempty"`
	Description string `json:"description,omitempty"`
	InstaAcc    string `json:"instaAcc,omitempty"`
}

type Handler struct {
	capsters CapsterRepository
	logger   Logger
}

func NewHandler(capsters CapsterRepository, logger Logger) *Handler {
	return &Handler{
		capsters: capsters,
		logger:   logger,
	}
}

// Handle POST /api/capsters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCapsterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /capsters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		h.logger.Warn("POST /capsters - Missing name")
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	created, err := h.capsters.Create(r.Context(), &domain.Capster{
		Name:        req.Name,
		Alias:       req.Alias,
		Description: req.Description,
		InstaAcc:    req.InstaAcc,
	})
	if err != nil {
		h.logger.Error("POST /capsters - Failed to create capster: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondData(w, http.StatusCreated, CapsterResponse{
		ID:          created.ID,
		Name:        created.Name,
		Alias:       created.Alias,
		Description: created.Description,
		InstaAcc:    created.InstaAcc,
	})
}

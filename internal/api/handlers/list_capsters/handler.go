package list_capsters

import (
	"net/http"

	"github.com/tigerbarber/appointment-service/internal/api/handlers"
	"github.com/tigerbarber/appointment-service/internal/domain"
)

// CapsterResponse JSON представление капстера
type CapsterResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Alias       string `json:"alias,omitempty"`
	Description string `json:"description,omitempty"`
	InstaAcc    string `json:"instaAcc,omitempty"`
}

func fromDomain(c *domain.Capster) CapsterResponse {
	return CapsterResponse{
		ID:          c.ID,
		Name:        c.Name,
		Alias:       c.Alias,
		Description: c.Description,
		InstaAcc:    c.InstaAcc,
	}
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

// Handle GET /api/capsters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	capsters, err := h.capsters.List(r.Context())
	if err != nil {
		h.logger.Error("GET /capsters - Failed to list capsters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]CapsterResponse, 0, len(capsters))
	for _, c := range capsters {
		out = append(out, fromDomain(c))
	}

	handlers.RespondData(w, http.StatusOK, out)
}

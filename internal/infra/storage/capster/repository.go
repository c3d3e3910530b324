package capster

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/integrations/recordstore"
)

const table = "capster"

// StoreGateway интерфейс шлюза хранилища, используемый репозиторием
type StoreGateway interface {
	Select(ctx context.Context, table string, query recordstore.Query) ([]json.RawMessage, error)
	Insert(ctx context.Context, table string, payload interface{}, out interface{}) error
}

// capsterRow строка таблицы capster
type capsterRow struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Alias       string `json:"alias"`
	Description string `json:"description"`
	InstaAcc    string `json:"instaAcc"`
}

// Repository репозиторий капстеров
type Repository struct {
	store StoreGateway
}

// NewRepository создает новый экземпляр репозитория капстеров
func NewRepository(store StoreGateway) *Repository {
	return &Repository{store: store}
}

// List возвращает всех капстеров
func (r *Repository) List(ctx context.Context) ([]*domain.Capster, error) {
	rows, err := r.store.Select(ctx, table, recordstore.NewQuery())
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrStore, err)
	}

	capsters := make([]*domain.Capster, 0, len(rows))
	for _, raw := range rows {
		var row capsterRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("%w: List: %v", ErrDecode, err)
		}
		capsters = append(capsters, toDomain(&row))
	}
	return capsters, nil
}

// Create добавляет капстера и возвращает строку, присвоенную хранилищем
func (r *Repository) Create(ctx context.Context, c *domain.Capster) (*domain.Capster, error) {
	payload := capsterRow{
		Name:        c.Name,
		Alias:       c.Alias,
		Description: c.Description,
		InstaAcc:    c.InstaAcc,
	}

	var created capsterRow
	if err := r.store.Insert(ctx, table, payload, &created); err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrStore, err)
	}
	return toDomain(&created), nil
}

func toDomain(row *capsterRow) *domain.Capster {
	return &domain.Capster{
		ID:          row.ID,
		Name:        row.Name,
		Alias:       row.Alias,
		Description: row.Description,
		InstaAcc:    row.InstaAcc,
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/integrations/recordstore"
)

const table = "service"

// StoreGateway интерфейс шлюза хранилища, используемый репозиторием
type StoreGateway interface {
	Select(ctx context.Context, table string, query recordstore.Query) ([]json.RawMessage, error)
	Insert(ctx context.Context, table string, payload interface{}, out interface{}) error
	Update(ctx context.Context, table string, query recordstore.Query, patch interface{}, out interface{}) error
	Delete(ctx context.Context, table string, query recordstore.Query) error
}

// serviceRow строка таблицы service
type serviceRow struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Type        string  `json:"type"`
}

// UpdatePatch частичное обновление услуги; nil-поля не затрагиваются
type UpdatePatch struct {
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Type        *string  `json:"type,omitempty"`
}

// Repository репозиторий услуг. Имя услуги — натуральный ключ для
// обновления и удаления.
type Repository struct {
	store StoreGateway
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(store StoreGateway) *Repository {
	return &Repository{store: store}
}

// List возвращает все услуги
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	rows, err := r.store.Select(ctx, table, recordstore.NewQuery())
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrStore, err)
	}

	services := make([]*domain.Service, 0, len(rows))
	for _, raw := range rows {
		var row serviceRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("%w: List: %v", ErrDecode, err)
		}
		services = append(services, toDomain(&row))
	}
	return services, nil
}

// Create добавляет услугу и возвращает строку, присвоенную хранилищем
func (r *Repository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	payload := serviceRow{
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Type:        s.Type,
	}

	var created serviceRow
	if err := r.store.Insert(ctx, table, payload, &created); err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrStore, err)
	}
	return toDomain(&created), nil
}

// UpdateByName обновляет услугу по имени. Возвращает обновлённую строку,
// если хранилище вернуло представление, иначе nil без ошибки.
func (r *Repository) UpdateByName(ctx context.Context, name string, patch UpdatePatch) (*domain.Service, error) {
	query := recordstore.NewQuery().Eq("name", name)

	var updated serviceRow
	if err := r.store.Update(ctx, table, query, patch, &updated); err != nil {
		return nil, fmt.Errorf("%w: UpdateByName: %v", ErrStore, err)
	}

	if updated.ID == 0 && updated.Name == "" {
		return nil, nil
	}
	return toDomain(&updated), nil
}

// DeleteByName удаляет услугу по имени
func (r *Repository) DeleteByName(ctx context.Context, name string) error {
	query := recordstore.NewQuery().Eq("name", name)

	if err := r.store.Delete(ctx, table, query); err != nil {
		return fmt.Errorf("%w: DeleteByName: %v", ErrStore, err)
	}
	return nil
}

func toDomain(row *serviceRow) *domain.Service {
	return &domain.Service{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Type:        row.Type,
	}
}

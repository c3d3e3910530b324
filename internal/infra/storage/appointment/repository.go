package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/integrations/recordstore"
)

const table = "appointment"

// Repository репозиторий записей на приём поверх шлюза хранилища
type Repository struct {
	store StoreGateway
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(store StoreGateway) *Repository {
	return &Repository{store: store}
}

// Create вставляет новую запись и возвращает строку, присвоенную хранилищем
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	var created appointmentRow
	if err := r.store.Insert(ctx, table, fromDomain(appt), &created); err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrStore, err)
	}
	return toDomain(&created), nil
}

// List возвращает все записи без фильтрации
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	rows, err := r.store.Select(ctx, table, recordstore.NewQuery())
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrStore, err)
	}
	return decodeRows(rows)
}

// ListByEmail возвращает записи пользователя, отсортированные по дате и
// времени по убыванию (сначала свежие)
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]*domain.Appointment, error) {
	query := recordstore.NewQuery().
		Eq("email", email).
		OrderBy("date.desc").
		OrderBy("time.desc")

	rows, err := r.store.Select(ctx, table, query)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail: %v", ErrStore, err)
	}
	return decodeRows(rows)
}

// FindByDate возвращает записи на дату: точное совпадение по дате и
// (если задан) капстеру, is-one-of по статусам. Порядок результата
// не гарантируется.
func (r *Repository) FindByDate(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	query := recordstore.NewQuery().Eq("date", filter.Date)

	if filter.CapsterID != nil {
		query = query.Eq("capsterId", strconv.FormatInt(*filter.CapsterID, 10))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		query = query.In("status", statuses)
	}

	rows, err := r.store.Select(ctx, table, query)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate: %v", ErrStore, err)
	}
	return decodeRows(rows)
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := recordstore.NewQuery().Eq("id", strconv.FormatInt(id, 10))

	rows, err := r.store.Select(ctx, table, query)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrStore, err)
	}
	if len(rows) == 0 {
		return nil, ErrAppointmentNotFound
	}

	var row appointmentRow
	if err := json.Unmarshal(rows[0], &row); err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrDecode, err)
	}
	return toDomain(&row), nil
}

// Update применяет частичное обновление по ID. Возвращает обновлённую
// строку, если хранилище вернуло представление, иначе nil без ошибки.
func (r *Repository) Update(ctx context.Context, id int64, patch UpdatePatch) (*domain.Appointment, error) {
	query := recordstore.NewQuery().Eq("id", strconv.FormatInt(id, 10))

	var updated appointmentRow
	if err := r.store.Update(ctx, table, query, patch, &updated); err != nil {
		return nil, fmt.Errorf("%w: Update: %v", ErrStore, err)
	}

	if updated.ID == 0 {
		return nil, nil
	}
	return toDomain(&updated), nil
}

// UpdateStatus обновляет только статус записи. Семантика представления
// как у Update.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.Appointment, error) {
	s := string(status)
	return r.Update(ctx, id, UpdatePatch{Status: &s})
}

// Delete удаляет запись по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := recordstore.NewQuery().Eq("id", strconv.FormatInt(id, 10))

	if err := r.store.Delete(ctx, table, query); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStore, err)
	}
	return nil
}

// DeletePast удаляет все записи с датой строго раньше before (YYYY-MM-DD)
func (r *Repository) DeletePast(ctx context.Context, before string) error {
	query := recordstore.NewQuery().Lt("date", before)

	if err := r.store.Delete(ctx, table, query); err != nil {
		return fmt.Errorf("%w: DeletePast: %v", ErrStore, err)
	}
	return nil
}

// decodeRows декодирует строки хранилища в доменные модели
func decodeRows(rows []json.RawMessage) ([]*domain.Appointment, error) {
	appts := make([]*domain.Appointment, 0, len(rows))
	for _, raw := range rows {
		var row appointmentRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		appts = append(appts, toDomain(&row))
	}
	return appts, nil
}

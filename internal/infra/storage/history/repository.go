package history

import (
	"context"
	"fmt"

	"github.com/tigerbarber/appointment-service/internal/domain"
)

// Таблицы вспомогательных журналов
const (
	userHistoryTable = "riwayat_pengguna"
	statusListTable  = "list_appointment"
)

// StoreGateway интерфейс шлюза хранилища, используемый репозиторием
type StoreGateway interface {
	Insert(ctx context.Context, table string, payload interface{}, out interface{}) error
}

// UserHistoryEntry строка журнала истории пользователя
type UserHistoryEntry struct {
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Service *string `json:"service"`
	Capster *string `json:"capster"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
}

// statusEntry строка журнала статусов
type statusEntry struct {
	AppointmentID int64  `json:"appointment_id"`
	Status        string `json:"status"`
}

// Repository наполняет вспомогательные журналы аудита. Все записи
// best-effort: ошибку логирует и глотает вызывающая сторона.
type Repository struct {
	store StoreGateway
}

// NewRepository создает новый экземпляр репозитория журналов
func NewRepository(store StoreGateway) *Repository {
	return &Repository{store: store}
}

// AddUserHistory добавляет строку в журнал истории пользователя
func (r *Repository) AddUserHistory(ctx context.Context, entry UserHistoryEntry) error {
	if err := r.store.Insert(ctx, userHistoryTable, entry, nil); err != nil {
		return fmt.Errorf("%w: AddUserHistory: %v", ErrStore, err)
	}
	return nil
}

// AddStatusEntry добавляет строку в журнал статусов
func (r *Repository) AddStatusEntry(ctx context.Context, appointmentID int64, status domain.Status) error {
	entry := statusEntry{
		AppointmentID: appointmentID,
		Status:        string(status),
	}
	if err := r.store.Insert(ctx, statusListTable, entry, nil); err != nil {
		return fmt.Errorf("%w: AddStatusEntry: %v", ErrStore, err)
	}
	return nil
}

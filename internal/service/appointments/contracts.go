package appointments

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Appointment, error)
	FindByDate(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// ConflictGuard интерфейс конфликтной проверки слота
type ConflictGuard interface {
	Check(ctx context.Context, date string, tod types.TimeString, capsterID int64, excludeID int64) error
}

// SlotLocker сериализует check-then-act по ключу слота
type SlotLocker interface {
	Lock(key string) (unlock func())
}

// CapsterRepository интерфейс репозитория капстеров (для обогащения)
type CapsterRepository interface {
	List(ctx context.Context) ([]*domain.Capster, error)
}

// AccountRepository интерфейс репозитория аккаунтов: разрешение
// идентификатора пользователя в email
type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

// Janitor интерфейс уборщика устаревших записей
type Janitor interface {
	PurgePast(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

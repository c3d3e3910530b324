package update_appointment

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/infra/storage/appointment"
	"github.com/tigerbarber/appointment-service/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, patch appointment.UpdatePatch) (*domain.Appointment, error)
}

// ConflictGuard интерфейс конфликтной проверки слота
type ConflictGuard interface {
	Check(ctx context.Context, date string, tod types.TimeString, capsterID int64, excludeID int64) error
}

// SlotLocker сериализует check-then-act по ключу слота
type SlotLocker interface {
	Lock(key string) (unlock func())
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_appointment

import (
	"context"
	"time"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/infra/storage/history"
	"github.com/tigerbarber/appointment-service/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// HistoryRepository интерфейс репозитория журналов аудита
type HistoryRepository interface {
	AddUserHistory(ctx context.Context, entry history.UserHistoryEntry) error
	AddStatusEntry(ctx context.Context, appointmentID int64, status domain.Status) error
}

// ConflictGuard интерфейс конфликтной проверки слота
type ConflictGuard interface {
	Check(ctx context.Context, date string, tod types.TimeString, capsterID int64, excludeID int64) error
}

// SlotLocker сериализует check-then-act по ключу слота
type SlotLocker interface {
	Lock(key string) (unlock func())
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

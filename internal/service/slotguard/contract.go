package slotguard

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/domain"
)

// AvailabilityReader читает записи на дату для конфликтной проверки
type AvailabilityReader interface {
	FindByDate(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_appointment

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/domain"
	updateAppointment "github.com/tigerbarber/appointment-service/internal/usecase/update_appointment"
)

// UpdateAppointmentUseCase интерфейс use case изменения записи
type UpdateAppointmentUseCase interface {
	Execute(ctx context.Context, id int64, req *updateAppointment.Request) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_appointment_status

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса смены статуса
type AppointmentsService interface {
	UpdateStatus(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_appointments

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса чтения записей
type AppointmentsService interface {
	ListAll(ctx context.Context) ([]models.AppointmentResponse, error)
	ListForUser(ctx context.Context, identifier string) ([]models.AppointmentResponse, error)
	ListByDate(ctx context.Context, req *models.AvailabilityRequest) ([]models.AppointmentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package delete_appointment

import "context"

// AppointmentsService интерфейс сервиса удаления записи
type AppointmentsService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

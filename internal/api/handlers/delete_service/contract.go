package delete_service

import "context"

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	DeleteByName(ctx context.Context, name string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

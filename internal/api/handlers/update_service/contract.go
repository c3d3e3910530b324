package update_service

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/infra/storage/service"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	UpdateByName(ctx context.Context, name string, patch service.UpdatePatch) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

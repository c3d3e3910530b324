package create_capster

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/domain"
)

// CapsterRepository интерфейс репозитория капстеров
type CapsterRepository interface {
	Create(ctx context.Context, c *domain.Capster) (*domain.Capster, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_capsters

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/domain"
)

// CapsterRepository интерфейс репозитория капстеров
type CapsterRepository interface {
	List(ctx context.Context) ([]*domain.Capster, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

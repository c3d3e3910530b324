package appointment

import (
	"context"
	"encoding/json"

	"github.com/tigerbarber/appointment-service/internal/integrations/recordstore"
)

// StoreGateway интерфейс шлюза хранилища, используемый репозиторием
type StoreGateway interface {
	Select(ctx context.Context, table string, query recordstore.Query) ([]json.RawMessage, error)
	Insert(ctx context.Context, table string, payload interface{}, out interface{}) error
	Update(ctx context.Context, table string, query recordstore.Query, patch interface{}, out interface{}) error
	Delete(ctx context.Context, table string, query recordstore.Query) error
}

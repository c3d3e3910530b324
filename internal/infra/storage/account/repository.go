package account

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/integrations/recordstore"
)

const table = "account"

// StoreGateway интерфейс шлюза хранилища, используемый репозиторием
type StoreGateway interface {
	Select(ctx context.Context, table string, query recordstore.Query) ([]json.RawMessage, error)
}

// accountRow строка таблицы account. Поле пароля намеренно не читается:
// аутентификация вне зоны ответственности этого сервиса.
// Флаг администратора встречается и как is_admin, и как isAdmin.
type accountRow struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsAdmin    *bool  `json:"is_admin"`
	IsAdminAlt *bool  `json:"isAdmin"`
}

// Repository read-only репозиторий аккаунтов
type Repository struct {
	store StoreGateway
}

// NewRepository создает новый экземпляр репозитория аккаунтов
func NewRepository(store StoreGateway) *Repository {
	return &Repository{store: store}
}

// GetByEmail находит аккаунт по email (уникальный натуральный ключ)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, recordstore.NewQuery().Eq("email", email), "GetByEmail")
}

// GetByID находит аккаунт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.getOne(ctx, recordstore.NewQuery().Eq("id", strconv.FormatInt(id, 10)), "GetByID")
}

func (r *Repository) getOne(ctx context.Context, query recordstore.Query, op string) (*domain.Account, error) {
	rows, err := r.store.Select(ctx, table, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStore, op, err)
	}
	if len(rows) == 0 {
		return nil, ErrAccountNotFound
	}

	var row accountRow
	if err := json.Unmarshal(rows[0], &row); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
	}

	isAdmin := false
	if row.IsAdmin != nil {
		isAdmin = *row.IsAdmin
	} else if row.IsAdminAlt != nil {
		isAdmin = *row.IsAdminAlt
	}

	return &domain.Account{
		ID:      row.ID,
		Email:   row.Email,
		Name:    row.Name,
		Phone:   row.Phone,
		IsAdmin: isAdmin,
	}, nil
}

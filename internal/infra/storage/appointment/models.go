package appointment

import (
	"strings"
	"time"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/pkg/types"
)

// appointmentRow строка таблицы appointment в хранилище.
// Колонка капстера исторически встречается и как capsterId, и как
// capster_id — при чтении принимаем оба варианта, при записи всегда
// пишем capsterId.
type appointmentRow struct {
	ID           int64   `json:"id,omitempty"`
	UserID       *int64  `json:"user_id,omitempty"`
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Service      *string `json:"service"`
	ServiceID    *int64  `json:"service_id,omitempty"`
	CapsterID    *int64  `json:"capsterId"`
	CapsterIDAlt *int64  `json:"capster_id,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
	Timestamp    string  `json:"timestamp,omitempty"`
}

// UpdatePatch частичное обновление записи; nil-поля не затрагиваются
type UpdatePatch struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Service   *string `json:"service,omitempty"`
	CapsterID *int64  `json:"capsterId,omitempty"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// fromDomain готовит payload для вставки (без id — его присваивает хранилище)
func fromDomain(a *domain.Appointment) appointmentRow {
	return appointmentRow{
		UserID:    a.UserID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Date:      a.Date,
		Time:      a.Time.String(),
		Service:   a.Service,
		ServiceID: a.ServiceID,
		CapsterID: a.CapsterID,
		Status:    string(a.Status),
		Notes:     a.Notes,
		Timestamp: a.Timestamp.UTC().Format(time.RFC3339),
	}
}

// parseTimestamp разбирает timestamp строки хранилища. Колонки типа
// timestamptz приходят в RFC3339, колонки timestamp — без зоны; для
// совсем старых строк в другом виде допустимо нулевое время.
func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// toDomain нормализует строку хранилища в доменную модель
func toDomain(row *appointmentRow) *domain.Appointment {
	capsterID := row.CapsterID
	if capsterID == nil {
		capsterID = row.CapsterIDAlt
	}

	ts := parseTimestamp(row.Timestamp)

	return &domain.Appointment{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Date:      row.Date,
		Time:      types.TimeString(row.Time),
		Service:   row.Service,
		ServiceID: row.ServiceID,
		CapsterID: capsterID,
		Status:    domain.Status(strings.ToLower(row.Status)),
		Notes:     row.Notes,
		Timestamp: ts,
	}
}

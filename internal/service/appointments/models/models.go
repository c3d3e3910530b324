package models

import (
	"errors"
	"time"

	"github.com/tigerbarber/appointment-service/internal/domain"
)

// ErrInvalidStatus возвращается при некорректном статусе в запросе
var ErrInvalidStatus = errors.New("invalid appointment status")

// Request модели

// AvailabilityRequest запрос выдачи занятости на дату
type AvailabilityRequest struct {
	Date      string
	CapsterID *int64
	Statuses  []string // пусто = {approved}
}

// ToDomainFilter конвертирует запрос в доменный фильтр с валидацией статусов
func (r *AvailabilityRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{
		Date:      r.Date,
		CapsterID: r.CapsterID,
	}

	if len(r.Statuses) == 0 {
		// По умолчанию конфликтный контекст: только approved
		filter.Statuses = domain.ConflictStatuses
		return filter, nil
	}

	statuses := make([]domain.Status, 0, len(r.Statuses))
	for _, raw := range r.Statuses {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return filter, ErrInvalidStatus
		}
		statuses = append(statuses, status)
	}
	filter.Statuses = statuses

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи; формат полей повторяет
// строку хранилища плюс capsterName, добавляемый обогащением
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"user_id,omitempty"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Service     *string `json:"service"`
	ServiceID   *int64  `json:"service_id,omitempty"`
	CapsterID   *int64  `json:"capsterId"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
	Timestamp   string  `json:"timestamp,omitempty"`
	CapsterName string  `json:"capsterName,omitempty"`
}

// StatusUpdateResponse ответ на смену статуса
type StatusUpdateResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// FromDomain конвертирует доменную модель в DTO
func FromDomain(a *domain.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		Date:        a.Date,
		Time:        a.Time.String(),
		Service:     a.Service,
		ServiceID:   a.ServiceID,
		CapsterID:   a.CapsterID,
		Status:      string(a.Status),
		Notes:       a.Notes,
		CapsterName: a.CapsterName,
	}

	if !a.Timestamp.IsZero() {
		resp.Timestamp = a.Timestamp.UTC().Format(time.RFC3339)
	}

	return resp
}

// FromDomainList конвертирует список доменных моделей в DTO
func FromDomainList(appts []*domain.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		result = append(result, FromDomain(a))
	}
	return result
}

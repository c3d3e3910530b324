package create_appointment

import (
	createAppointment "github.com/tigerbarber/appointment-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest тело POST запроса. Клиенты исторически
// присылают дату, время и капстера в двух вариантах именования —
// принимаем оба.
type CreateAppointmentRequest struct {
	UserID       *int64  `json:"user_id"`
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Date         string  `json:"date"`
	DateAlt      string  `json:"appointment_date"`
	Time         string  `json:"time"`
	TimeAlt      string  `json:"appointment_time"`
	Service      *string `json:"service"`
	ServiceID    *int64  `json:"service_id"`
	CapsterID    *int64  `json:"capsterId"`
	CapsterIDAlt *int64  `json:"capster_id"`
	Capster      *string `json:"capster"`
	Notes        *string `json:"notes"`
	Status       string  `json:"status"`
}

// ToUseCaseRequest приводит HTTP модель к модели use case,
// схлопывая альтернативные имена полей
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	date := r.Date
	if date == "" {
		date = r.DateAlt
	}
	tod := r.Time
	if tod == "" {
		tod = r.TimeAlt
	}
	capsterID := r.CapsterID
	if capsterID == nil {
		capsterID = r.CapsterIDAlt
	}

	return &createAppointment.Request{
		UserID:    r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      date,
		Time:      tod,
		Service:   r.Service,
		ServiceID: r.ServiceID,
		CapsterID: capsterID,
		Capster:   r.Capster,
		Notes:     r.Notes,
		Status:    r.Status,
	}
}

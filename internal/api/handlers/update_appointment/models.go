package update_appointment

import (
	updateAppointment "github.com/tigerbarber/appointment-service/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest тело PATCH запроса; отсутствующие поля не
// затрагиваются
type UpdateAppointmentRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	Service      *string `json:"service"`
	ServiceID    *int64  `json:"service_id"`
	CapsterID    *int64  `json:"capsterId"`
	CapsterIDAlt *int64  `json:"capster_id"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
}

// ToUseCaseRequest приводит HTTP модель к модели use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest() *updateAppointment.Request {
	capsterID := r.CapsterID
	if capsterID == nil {
		capsterID = r.CapsterIDAlt
	}

	return &updateAppointment.Request{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.Date,
		Time:      r.Time,
		Service:   r.Service,
		ServiceID: r.ServiceID,
		CapsterID: capsterID,
		Notes:     r.Notes,
		Status:    r.Status,
	}
}

package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не существует
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("update_appointment: invalid date format")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("update_appointment: invalid time format")

	// ErrInvalidStatus возвращается при нераспознанном статусе
	ErrInvalidStatus = errors.New("update_appointment: invalid status")

	// ErrTimeSlotTaken возвращается, когда целевой слот капстера занят
	ErrTimeSlotTaken = errors.New("update_appointment: time slot already taken")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("update_appointment: internal error")
)

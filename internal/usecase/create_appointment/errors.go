package create_appointment

import "errors"

var (
	// ErrMissingFields возвращается, когда не указаны дата или время
	ErrMissingFields = errors.New("create_appointment: date and time are required")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("create_appointment: invalid date format")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("create_appointment: invalid time format")

	// ErrTimeSlotTaken возвращается, когда слот капстера уже занят
	ErrTimeSlotTaken = errors.New("create_appointment: time slot already taken")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("create_appointment: internal error")
)

package appointments

import "errors"

var (
	// ErrInvalidStatus возвращается при статусе вне закрытого перечисления
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrMissingStatus возвращается, когда статус не указан
	ErrMissingStatus = errors.New("status required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не существует
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrTimeSlotTaken возвращается при одобрении записи в слот, уже
	// занятый другой подтвержденной записью
	ErrTimeSlotTaken = errors.New("time slot already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments service: internal error")
)

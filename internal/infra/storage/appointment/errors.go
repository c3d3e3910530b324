package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("appointment.repository: store error")

	// ErrDecode возвращается при ошибке декодирования строки хранилища
	ErrDecode = errors.New("appointment.repository: failed to decode row")
)

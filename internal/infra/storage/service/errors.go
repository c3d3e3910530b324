package service

import "errors"

var (
	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("service.repository: store error")

	// ErrDecode возвращается при ошибке декодирования строки хранилища
	ErrDecode = errors.New("service.repository: failed to decode row")
)

package capster

import "errors"

var (
	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("capster.repository: store error")

	// ErrDecode возвращается при ошибке декодирования строки хранилища
	ErrDecode = errors.New("capster.repository: failed to decode row")
)

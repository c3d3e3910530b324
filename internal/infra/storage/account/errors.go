package account

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("account.repository: account not found")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("account.repository: store error")

	// ErrDecode возвращается при ошибке декодирования строки хранилища
	ErrDecode = errors.New("account.repository: failed to decode row")
)

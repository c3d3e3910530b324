package recordstore

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках шлюза
	// (построение запроса, транспорт)
	ErrInternal = errors.New("recordstore: internal error")

	// ErrBadStatus возвращается при неожиданном статус-коде хранилища;
	// обёрнутое сообщение содержит код и тело ответа для диагностики
	ErrBadStatus = errors.New("recordstore: unexpected status")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("recordstore: invalid response")
)

package history

import "errors"

// ErrStore возвращается при ошибке обращения к хранилищу
var ErrStore = errors.New("history.repository: store error")

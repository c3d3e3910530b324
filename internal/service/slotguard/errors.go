package slotguard

import "errors"

var (
	// ErrTimeSlotTaken возвращается, когда слот капстера уже занят
	// approved-записью
	ErrTimeSlotTaken = errors.New("slotguard: time slot already taken")

	// ErrInternal возвращается при ошибке чтения занятости
	ErrInternal = errors.New("slotguard: internal error")
)

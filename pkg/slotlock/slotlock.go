package slotlock

import "sync"

// Locker сериализует операции над одним слотом (capster, date, time).
// Удалённое хранилище не даёт ни транзакций, ни уникального ограничения
// на этом уровне, поэтому check-then-act вокруг approved-слотов защищается
// in-process мьютексом по ключу слота. При нескольких инстансах сервиса
// этого недостаточно — тогда нужен partial unique index на стороне
// хранилища: (capsterId, date, time) where status = 'approved'.
type Locker struct {
	mu    sync.Mutex
	slots map[string]*slotMutex
}

type slotMutex struct {
	sync.Mutex
	refs int
}

// New создает пустой Locker
func New() *Locker {
	return &Locker{slots: make(map[string]*slotMutex)}
}

// Lock захватывает мьютекс слота и возвращает функцию освобождения.
// Мьютексы создаются по требованию и удаляются, когда никто их не держит.
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.slots[key]
	if !ok {
		m = &slotMutex{}
		l.slots[key] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.slots, key)
		}
		l.mu.Unlock()
	}
}

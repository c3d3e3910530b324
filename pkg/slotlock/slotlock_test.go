package slotlock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	l := New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			unlock := l.Lock("7|2026-06-01|10:00")
			defer unlock()

			// Незащищённый инкремент: без сериализации по ключу гонка
			// потеряла бы обновления
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestLocker_IndependentKeysDoNotBlock(t *testing.T) {
	l := New()

	unlockA := l.Lock("7|2026-06-01|10:00")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := l.Lock("8|2026-06-01|10:00")
		unlockB()
		close(done)
	}()

	// Другой ключ не должен ждать освобождения первого
	<-done
}

func TestLocker_CleansUpReleasedKeys(t *testing.T) {
	l := New()

	unlock := l.Lock("7|2026-06-01|10:00")
	unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	require.Empty(t, l.slots)
}

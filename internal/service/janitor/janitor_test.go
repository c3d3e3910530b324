package janitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	deletePastFn func(ctx context.Context, before string) error
}

func (f *fakeRepo) DeletePast(ctx context.Context, before string) error {
	return f.deletePastFn(ctx, before)
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func TestPurgePast_DeletesBeforeToday(t *testing.T) {
	var gotBefore string
	j := New(&fakeRepo{deletePastFn: func(ctx context.Context, before string) error {
		gotBefore = before
		return nil
	}}, nopLogger{})
	j.timeProvider = &fakeClock{now: time.Date(2026, 6, 15, 3, 30, 0, 0, time.UTC)}

	require.NoError(t, j.PurgePast(context.Background()))
	assert.Equal(t, "2026-06-15", gotBefore)
}

func TestPurgePast_WrapsRepositoryError(t *testing.T) {
	j := New(&fakeRepo{deletePastFn: func(ctx context.Context, before string) error {
		return errors.New("store unreachable")
	}}, nopLogger{})

	assert.ErrorIs(t, j.PurgePast(context.Background()), ErrPurge)
}

func TestSchedule_RejectsInvalidSpec(t *testing.T) {
	j := New(&fakeRepo{deletePastFn: func(ctx context.Context, before string) error {
		return nil
	}}, nopLogger{})

	_, err := j.Schedule("every blue moon")
	assert.Error(t, err)
}

func TestSchedule_ValidSpecStarts(t *testing.T) {
	j := New(&fakeRepo{deletePastFn: func(ctx context.Context, before string) error {
		return nil
	}}, nopLogger{})

	c, err := j.Schedule("0 3 * * *")
	require.NoError(t, err)
	require.NotNil(t, c)
	c.Stop()
}

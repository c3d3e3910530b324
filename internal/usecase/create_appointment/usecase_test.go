package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/infra/storage/history"
	"github.com/tigerbarber/appointment-service/internal/service/slotguard"
	"github.com/tigerbarber/appointment-service/pkg/ptr"
	"github.com/tigerbarber/appointment-service/pkg/slotlock"
	"github.com/tigerbarber/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeAppointments struct {
	createFn func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

func (f *fakeAppointments) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	return f.createFn(ctx, appt)
}

type fakeAudit struct {
	mu          sync.Mutex
	userEntries []history.UserHistoryEntry
	statusCalls []int64
	userErr     error
	statusErr   error
}

func (f *fakeAudit) AddUserHistory(ctx context.Context, entry history.UserHistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userEntries = append(f.userEntries, entry)
	return f.userErr
}

func (f *fakeAudit) AddStatusEntry(ctx context.Context, appointmentID int64, status domain.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls = append(f.statusCalls, appointmentID)
	return f.statusErr
}

func (f *fakeAudit) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.userEntries), len(f.statusCalls)
}

type fakeGuard struct {
	checkFn func(ctx context.Context, date string, tod types.TimeString, capsterID int64, excludeID int64) error
}

func (f *fakeGuard) Check(ctx context.Context, date string, tod types.TimeString, capsterID int64, excludeID int64) error {
	return f.checkFn(ctx, date, tod, capsterID, excludeID)
}

func newUseCase(appts *fakeAppointments, audit *fakeAudit, guard *fakeGuard) *UseCase {
	return NewUseCase(
		appts,
		audit,
		guard,
		slotlock.New(),
		&fakeClock{now: time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func passthroughCreate(nextID *int64) func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	var mu sync.Mutex
	return func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
		mu.Lock()
		defer mu.Unlock()
		*nextID++
		created := *appt
		created.ID = *nextID
		return &created, nil
	}
}

func TestExecute_MissingFields(t *testing.T) {
	uc := newUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{Date: "", Time: "10:00"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = uc.Execute(context.Background(), &Request{Date: "2026-06-01", Time: ""})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestExecute_InvalidFormats(t *testing.T) {
	uc := newUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{Date: "01.06.2026", Time: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Date: "2026-06-01", Time: "10:00:00"})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestExecute_DefaultsToPending(t *testing.T) {
	var id int64
	var gotStatus domain.Status
	next := passthroughCreate(&id)
	uc := newUseCase(
		&fakeAppointments{createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			gotStatus = appt.Status
			return next(ctx, appt)
		}},
		&fakeAudit{},
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			return nil
		}},
	)

	created, err := uc.Execute(context.Background(), &Request{Date: "2026-06-01", Time: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, gotStatus)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestExecute_CoercesUnknownStatusToPending(t *testing.T) {
	var id int64
	uc := newUseCase(
		&fakeAppointments{createFn: passthroughCreate(&id)},
		&fakeAudit{},
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			return nil
		}},
	)

	created, err := uc.Execute(context.Background(), &Request{Date: "2026-06-01", Time: "10:00", Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestExecute_NormalizesStatusCase(t *testing.T) {
	var id int64
	uc := newUseCase(
		&fakeAppointments{createFn: passthroughCreate(&id)},
		&fakeAudit{},
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			return nil
		}},
	)

	created, err := uc.Execute(context.Background(), &Request{
		Date: "2026-06-01", Time: "10:00", Status: "APPROVED", CapsterID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, created.Status)
}

func TestExecute_NoCapsterSkipsGuard(t *testing.T) {
	var id int64
	guardCalled := false
	uc := newUseCase(
		&fakeAppointments{createFn: passthroughCreate(&id)},
		&fakeAudit{},
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			guardCalled = true
			return nil
		}},
	)

	// Запись "к любому капстеру" создаётся без конфликтной проверки
	_, err := uc.Execute(context.Background(), &Request{Date: "2026-06-01", Time: "10:00", Status: "approved"})
	require.NoError(t, err)
	assert.False(t, guardCalled)
}

func TestExecute_PendingSkipsGuard(t *testing.T) {
	var id int64
	guardCalled := false
	uc := newUseCase(
		&fakeAppointments{createFn: passthroughCreate(&id)},
		&fakeAudit{},
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			guardCalled = true
			return nil
		}},
	)

	// Pending-запись слот не занимает: проверяется только одобрение
	created, err := uc.Execute(context.Background(), &Request{
		Date: "2026-06-01", Time: "10:00", CapsterID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.False(t, guardCalled)
}

func TestExecute_SlotTaken(t *testing.T) {
	uc := newUseCase(
		&fakeAppointments{createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			t.Fatal("Create must not be called when the slot is taken")
			return nil, nil
		}},
		&fakeAudit{},
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			return slotguard.ErrTimeSlotTaken
		}},
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date: "2026-06-01", Time: "10:00", CapsterID: ptr.Ptr(int64(7)), Status: "approved",
	})
	assert.ErrorIs(t, err, ErrTimeSlotTaken)
}

func TestExecute_GuardFailure(t *testing.T) {
	uc := newUseCase(
		&fakeAppointments{},
		&fakeAudit{},
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			return errors.New("store unreachable")
		}},
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date: "2026-06-01", Time: "10:00", CapsterID: ptr.Ptr(int64(7)), Status: "approved",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_WritesAuditLogsInBackground(t *testing.T) {
	var id int64
	audit := &fakeAudit{}
	uc := newUseCase(
		&fakeAppointments{createFn: passthroughCreate(&id)},
		audit,
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			return nil
		}},
	)

	created, err := uc.Execute(context.Background(), &Request{
		Date:    "2026-06-01",
		Time:    "10:00",
		Email:   ptr.Ptr("user@example.com"),
		Service: ptr.Ptr("Haircut"),
		Capster: ptr.Ptr("Ucok"),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		users, statuses := audit.counts()
		return users == 1 && statuses == 1
	}, time.Second, 10*time.Millisecond)

	audit.mu.Lock()
	defer audit.mu.Unlock()
	assert.Equal(t, "user@example.com", *audit.userEntries[0].Email)
	assert.Equal(t, "Ucok", *audit.userEntries[0].Capster)
	assert.Equal(t, created.ID, audit.statusCalls[0])
}

func TestExecute_AuditFailureDoesNotPropagate(t *testing.T) {
	var id int64
	audit := &fakeAudit{userErr: errors.New("table missing"), statusErr: errors.New("table missing")}
	uc := newUseCase(
		&fakeAppointments{createFn: passthroughCreate(&id)},
		audit,
		&fakeGuard{checkFn: func(ctx context.Context, date string, tod types.TimeString, capsterID, excludeID int64) error {
			return nil
		}},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: "2026-06-01", Time: "10:00"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		users, statuses := audit.counts()
		return users == 1 && statuses == 1
	}, time.Second, 10*time.Millisecond)
}

// approvedStore это in-memory хранилище: FindByDate отдаёт approved-записи,
// Create дописывает. Имитирует удалённое хранилище без ограничений
// уникальности.
type approvedStore struct {
	mu     sync.Mutex
	rows   []*domain.Appointment
	lastID int64
}

func (s *approvedStore) FindByDate(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Appointment
	for _, row := range s.rows {
		if row.Date != filter.Date || !row.IsApproved() {
			continue
		}
		if filter.CapsterID != nil && (row.CapsterID == nil || *row.CapsterID != *filter.CapsterID) {
			continue
		}
		copied := *row
		out = append(out, &copied)
	}
	return out, nil
}

func (s *approvedStore) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	created := *appt
	created.ID = s.lastID
	s.rows = append(s.rows, &created)
	return &created, nil
}

func TestExecute_ConcurrentApprovalsSingleWinner(t *testing.T) {
	store := &approvedStore{}
	guard := slotguard.NewGuard(store, nopLogger{})
	uc := NewUseCase(store, &fakeAudit{}, guard, slotlock.New(),
		&fakeClock{now: time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)}, nopLogger{})

	const attempts = 20
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{
				Date:      "2026-06-01",
				Time:      "10:00",
				CapsterID: ptr.Ptr(int64(7)),
				Status:    "approved",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrTimeSlotTaken):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Сериализация по ключу слота гарантирует единственное одобрение
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
}

func TestExecute_PendingCoexistence(t *testing.T) {
	store := &approvedStore{}
	guard := slotguard.NewGuard(store, nopLogger{})
	uc := NewUseCase(store, &fakeAudit{}, guard, slotlock.New(),
		&fakeClock{now: time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)}, nopLogger{})

	for i := 0; i < 2; i++ {
		created, err := uc.Execute(context.Background(), &Request{
			Date:      "2026-06-01",
			Time:      "10:00",
			CapsterID: ptr.Ptr(int64(7)),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, created.Status)
	}
}

func TestExecute_ApprovedOccupant(t *testing.T) {
	store := &approvedStore{}
	store.rows = append(store.rows, &domain.Appointment{
		ID: 1, Date: "2026-06-01", Time: "10:00",
		CapsterID: ptr.Ptr(int64(7)), Status: domain.StatusApproved,
	})
	store.lastID = 1

	guard := slotguard.NewGuard(store, nopLogger{})
	uc := NewUseCase(store, &fakeAudit{}, guard, slotlock.New(),
		&fakeClock{now: time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)}, nopLogger{})

	// Занятый слот блокирует только второе одобрение; pending-заявка на
	// тот же слот создаётся и ждёт решения
	created, err := uc.Execute(context.Background(), &Request{
		Date: "2026-06-01", Time: "10:00", CapsterID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)

	_, err = uc.Execute(context.Background(), &Request{
		Date: "2026-06-01", Time: "10:00", CapsterID: ptr.Ptr(int64(7)), Status: "approved",
	})
	assert.ErrorIs(t, err, ErrTimeSlotTaken)
}

package slotguard

import (
	"context"
	"fmt"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/pkg/types"
)

// Guard защита от двойного бронирования: один капстер не может иметь две
// approved-записи на один (date, time) слот.
type Guard struct {
	appointments AvailabilityReader
	log          Logger
}

// NewGuard создает новый экземпляр Guard
func NewGuard(appointments AvailabilityReader, log Logger) *Guard {
	return &Guard{
		appointments: appointments,
		log:          log,
	}
}

// Check проверяет слот (date, tod) капстера capsterID.
// Кандидат сверяется только с approved-записями: pending не блокирует слот,
// блокируется второе одобрение ("first approval wins").
// excludeID исключает собственную запись при обновлении (0 — не исключать).
func (g *Guard) Check(ctx context.Context, date string, tod types.TimeString, capsterID int64, excludeID int64) error {
	existing, err := g.appointments.FindByDate(ctx, domain.AppointmentFilter{
		Date:      date,
		CapsterID: &capsterID,
		Statuses:  domain.ConflictStatuses,
	})
	if err != nil {
		return fmt.Errorf("%w: Check - availability read: %v", ErrInternal, err)
	}

	for _, appt := range existing {
		if excludeID != 0 && appt.ID == excludeID {
			continue
		}
		if appt.Time == tod {
			g.log.Warn("Check: slot taken: date=%s time=%s capster=%d held by appointment id=%d",
				date, tod, capsterID, appt.ID)
			return ErrTimeSlotTaken
		}
	}

	return nil
}

// SlotKey строит ключ сериализации для одного слота капстера.
// Используется с pkg/slotlock вокруг check-then-act.
func SlotKey(capsterID int64, date string, tod types.TimeString) string {
	return fmt.Sprintf("%d|%s|%s", capsterID, date, tod)
}

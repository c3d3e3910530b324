package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/infra/storage/appointment"
	"github.com/tigerbarber/appointment-service/internal/service/slotguard"
	"github.com/tigerbarber/appointment-service/pkg/types"
)

// UseCase сценарий частичного изменения записи
type UseCase struct {
	appointments AppointmentRepository
	guard        ConflictGuard
	slots        SlotLocker
	log          Logger
}

// NewUseCase создает новый use case изменения записи
func NewUseCase(appointments AppointmentRepository, guard ConflictGuard, slots SlotLocker, log Logger) *UseCase {
	return &UseCase{
		appointments: appointments,
		guard:        guard,
		slots:        slots,
		log:          log,
	}
}

// Execute применяет частичное обновление к существующей записи.
// Если после слияния у записи есть капстер и меняются поля слота либо
// запись оказывается подтвержденной, целевой слот проверяется на
// конфликт. Собственная запись из проверки исключается, поэтому правка
// заметок или контактов не блокируется её же слотом.
func (uc *UseCase) Execute(ctx context.Context, id int64, req *Request) (*domain.Appointment, error) {
	current, err := uc.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
		}
		uc.log.Error("UpdateAppointment: fetch %d failed: %v", id, err)
		return nil, fmt.Errorf("%w: Execute - get: %v", ErrInternal, err)
	}

	patch, err := uc.buildPatch(req)
	if err != nil {
		return nil, err
	}

	date, tod, capsterID, slotChanged := mergeSlot(current, patch)

	if capsterID != nil && (slotChanged || resultingApproved(current, patch)) {
		unlock := uc.slots.Lock(slotguard.SlotKey(*capsterID, date, tod))
		defer unlock()

		if err := uc.guard.Check(ctx, date, tod, *capsterID, id); err != nil {
			if errors.Is(err, slotguard.ErrTimeSlotTaken) {
				return nil, fmt.Errorf("%w: capster %d at %s %s", ErrTimeSlotTaken, *capsterID, date, tod)
			}
			uc.log.Error("UpdateAppointment: conflict check failed for %d: %v", id, err)
			return nil, fmt.Errorf("%w: Execute - conflict check: %v", ErrInternal, err)
		}
	}

	updated, err := uc.appointments.Update(ctx, id, patch)
	if err != nil {
		uc.log.Error("UpdateAppointment: store update failed for %d: %v", id, err)
		return nil, fmt.Errorf("%w: Execute - update: %v", ErrInternal, err)
	}
	if updated == nil {
		// Хранилище не вернуло representation; перечитываем запись
		updated, err = uc.appointments.GetByID(ctx, id)
		if err != nil {
			uc.log.Error("UpdateAppointment: re-read %d failed: %v", id, err)
			return nil, fmt.Errorf("%w: Execute - re-read: %v", ErrInternal, err)
		}
	}

	uc.log.Info("UpdateAppointment: updated appointment %d", id)

	return updated, nil
}

// buildPatch переводит запрос в патч хранилища с валидацией форматов
func (uc *UseCase) buildPatch(req *Request) (appointment.UpdatePatch, error) {
	patch := appointment.UpdatePatch{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   req.Service,
		CapsterID: req.CapsterID,
		Notes:     req.Notes,
	}

	if req.Date != nil {
		if _, err := time.Parse(domain.DateFormat, *req.Date); err != nil {
			return appointment.UpdatePatch{}, fmt.Errorf("%w: %q", ErrInvalidDate, *req.Date)
		}
		patch.Date = req.Date
	}

	if req.Time != nil {
		tod, err := types.NewTimeStringFromString(*req.Time)
		if err != nil {
			return appointment.UpdatePatch{}, fmt.Errorf("%w: %q", ErrInvalidTime, *req.Time)
		}
		normalized := tod.String()
		patch.Time = &normalized
	}

	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return appointment.UpdatePatch{}, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		s := string(status)
		patch.Status = &s
	}

	return patch, nil
}

// resultingApproved сообщает, будет ли запись подтвержденной после
// применения патча: статус либо явно переводится в approved, либо не
// трогается, а запись уже подтверждена
func resultingApproved(current *domain.Appointment, patch appointment.UpdatePatch) bool {
	if patch.Status != nil {
		return domain.Status(*patch.Status) == domain.StatusApproved
	}
	return current.IsApproved()
}

// mergeSlot вычисляет итоговые дату, время и капстера после применения
// патча и сообщает, затронуты ли поля слота. Берёт значения из патча,
// а не из запроса: время там уже приведено к каноничному "HH:MM"
func mergeSlot(current *domain.Appointment, patch appointment.UpdatePatch) (string, types.TimeString, *int64, bool) {
	date := current.Date
	tod := current.Time
	capsterID := current.CapsterID
	changed := false

	if patch.Date != nil && *patch.Date != date {
		date = *patch.Date
		changed = true
	}
	if patch.Time != nil && types.TimeString(*patch.Time) != tod {
		tod = types.TimeString(*patch.Time)
		changed = true
	}
	if patch.CapsterID != nil && (capsterID == nil || *patch.CapsterID != *capsterID) {
		capsterID = patch.CapsterID
		changed = true
	}

	return date, tod, capsterID, changed
}

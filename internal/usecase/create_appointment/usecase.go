package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/infra/storage/history"
	"github.com/tigerbarber/appointment-service/internal/service/slotguard"
)

const auditTimeout = 10 * time.Second

// UseCase сценарий создания записи на приём
type UseCase struct {
	appointments AppointmentRepository
	audit        HistoryRepository
	guard        ConflictGuard
	slots        SlotLocker
	timeProvider TimeProvider
	log          Logger
}

// NewUseCase создает новый use case создания записи
func NewUseCase(
	appointments AppointmentRepository,
	audit HistoryRepository,
	guard ConflictGuard,
	slots SlotLocker,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		audit:        audit,
		guard:        guard,
		slots:        slots,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute создает запись. Слот проверяется на конфликт только когда
// запись создается сразу подтвержденной и с указанным капстером:
// pending-записи слот не занимают и создаются даже в занятый слот,
// блокируется их последующее одобрение. Записи без предпочтения
// капстера создаются всегда.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	tod, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		UserID:    req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      tod,
		Service:   req.Service,
		ServiceID: req.ServiceID,
		CapsterID: req.CapsterID,
		Status:    normalizeStatus(req.Status, uc.log),
		Notes:     req.Notes,
		Timestamp: uc.timeProvider.Now().UTC(),
	}

	if appt.HasCapster() && appt.IsApproved() {
		// Держим ключ слота до завершения вставки, чтобы параллельные
		// запросы на тот же слот не прошли проверку одновременно.
		unlock := uc.slots.Lock(slotguard.SlotKey(*appt.CapsterID, appt.Date, appt.Time))
		defer unlock()

		if err := uc.guard.Check(ctx, appt.Date, appt.Time, *appt.CapsterID, 0); err != nil {
			if errors.Is(err, slotguard.ErrTimeSlotTaken) {
				return nil, fmt.Errorf("%w: capster %d at %s %s",
					ErrTimeSlotTaken, *appt.CapsterID, appt.Date, appt.Time)
			}
			uc.log.Error("CreateAppointment: conflict check failed: %v", err)
			return nil, fmt.Errorf("%w: Execute - conflict check: %v", ErrInternal, err)
		}
	}

	created, err := uc.appointments.Create(ctx, appt)
	if err != nil {
		uc.log.Error("CreateAppointment: store insert failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - create: %v", ErrInternal, err)
	}

	uc.log.Info("CreateAppointment: created appointment %d on %s %s (status=%s)",
		created.ID, created.Date, created.Time, created.Status)

	go uc.appendAuditLogs(created, req.Capster)

	return created, nil
}

// appendAuditLogs пишет журналы истории в фоне. Ошибки журналирования
// не влияют на результат создания записи.
func (uc *UseCase) appendAuditLogs(appt *domain.Appointment, capsterName *string) {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	entry := history.UserHistoryEntry{
		Email:   appt.Email,
		Name:    appt.Name,
		Service: appt.Service,
		Capster: capsterName,
		Date:    appt.Date,
		Time:    appt.Time.String(),
	}
	if err := uc.audit.AddUserHistory(ctx, entry); err != nil {
		uc.log.Warn("CreateAppointment: user history entry failed for appointment %d: %v", appt.ID, err)
	}

	if err := uc.audit.AddStatusEntry(ctx, appt.ID, appt.Status); err != nil {
		uc.log.Warn("CreateAppointment: status log entry failed for appointment %d: %v", appt.ID, err)
	}
}

package appointments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/internal/infra/storage/appointment"
	"github.com/tigerbarber/appointment-service/internal/service/appointments/models"
	"github.com/tigerbarber/appointment-service/internal/service/slotguard"
)

// Service сервис жизненного цикла записей: выдачи списков, смена статуса,
// удаление. Создание и частичное обновление с конфликтной проверкой живут
// в отдельных use case.
type Service struct {
	appointments AppointmentRepository
	capsters     CapsterRepository
	accounts     AccountRepository
	janitor      Janitor
	guard        ConflictGuard
	slots        SlotLocker
	log          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointments AppointmentRepository,
	capsters CapsterRepository,
	accounts AccountRepository,
	janitor Janitor,
	guard ConflictGuard,
	slots SlotLocker,
	log Logger,
) *Service {
	return &Service{
		appointments: appointments,
		capsters:     capsters,
		accounts:     accounts,
		janitor:      janitor,
		guard:        guard,
		slots:        slots,
		log:          log,
	}
}

// ListAll возвращает все записи с обогащением именами капстеров.
// Перед чтением попутно запускается уборка устаревших записей —
// best-effort, её ошибка не блокирует выдачу.
func (s *Service) ListAll(ctx context.Context) ([]models.AppointmentResponse, error) {
	if err := s.janitor.PurgePast(ctx); err != nil {
		s.log.Warn("ListAll: past appointment cleanup failed: %v", err)
	}

	appts, err := s.appointments.List(ctx)
	if err != nil {
		s.log.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll: %v", ErrInternal, err)
	}

	s.log.Info("ListAll: fetched %d appointments", len(appts))
	return models.FromDomainList(s.enrich(ctx, appts)), nil
}

// ListForUser возвращает записи пользователя по идентификатору: email
// напрямую либо числовой id аккаунта, разрешаемый в email. Сортировка —
// по дате и времени по убыванию, с обогащением.
func (s *Service) ListForUser(ctx context.Context, identifier string) ([]models.AppointmentResponse, error) {
	email := s.resolveEmail(ctx, identifier)

	appts, err := s.appointments.ListByEmail(ctx, email)
	if err != nil {
		s.log.Error("ListForUser: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: ListForUser: %v", ErrInternal, err)
	}

	s.log.Info("ListForUser: fetched %d appointments for %s", len(appts), email)
	return models.FromDomainList(s.enrich(ctx, appts)), nil
}

// ListByDate возвращает записи на дату с опциональной фильтрацией по
// капстеру и статусам; основа выдачи занятости слотов
func (s *Service) ListByDate(ctx context.Context, req *models.AvailabilityRequest) ([]models.AppointmentResponse, error) {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		s.log.Warn("ListByDate: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.log.Warn("ListByDate: invalid statuses %v", req.Statuses)
		return nil, fmt.Errorf("%w: invalid statuses", ErrInvalidInput)
	}

	appts, err := s.appointments.FindByDate(ctx, filter)
	if err != nil {
		s.log.Error("ListByDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: ListByDate: %v", ErrInternal, err)
	}

	s.log.Info("ListByDate: fetched %d appointments for date=%s", len(appts), req.Date)
	return models.FromDomainList(s.enrich(ctx, appts)), nil
}

// UpdateStatus переводит запись в новый статус. Статус валидируется по
// закрытому перечислению, сравнение без учёта регистра, хранится в
// нижнем регистре. Переход в approved проходит конфликтную проверку
// слота под ключом slotlock: первое одобрение выигрывает, второе
// получает ErrTimeSlotTaken.
func (s *Service) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*models.StatusUpdateResponse, error) {
	if strings.TrimSpace(rawStatus) == "" {
		return nil, ErrMissingStatus
	}

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		s.log.Warn("UpdateStatus: invalid status %q for appointment id=%d", rawStatus, id)
		return nil, ErrInvalidStatus
	}

	if status == domain.StatusApproved {
		if err := s.guardApproval(ctx, id); err != nil {
			return nil, err
		}
	} else if _, err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}

	s.log.Info("UpdateStatus: appointment id=%d set to status=%s", id, status)
	return &models.StatusUpdateResponse{ID: id, Status: string(status)}, nil
}

// guardApproval одобряет запись, удерживая ключ её слота: между
// конфликтной проверкой и записью статуса параллельное одобрение того
// же слота не проходит. Собственная запись из проверки исключается.
func (s *Service) guardApproval(ctx context.Context, id int64) error {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return fmt.Errorf("%w: id %d", ErrAppointmentNotFound, id)
		}
		s.log.Error("UpdateStatus: fetch appointment id=%d failed: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - get: %v", ErrInternal, err)
	}

	if appt.HasCapster() {
		unlock := s.slots.Lock(slotguard.SlotKey(*appt.CapsterID, appt.Date, appt.Time))
		defer unlock()

		if err := s.guard.Check(ctx, appt.Date, appt.Time, *appt.CapsterID, id); err != nil {
			if errors.Is(err, slotguard.ErrTimeSlotTaken) {
				s.log.Warn("UpdateStatus: approval rejected for appointment id=%d: slot taken", id)
				return fmt.Errorf("%w: capster %d at %s %s", ErrTimeSlotTaken, *appt.CapsterID, appt.Date, appt.Time)
			}
			s.log.Error("UpdateStatus: conflict check failed for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - conflict check: %v", ErrInternal, err)
		}
	}

	if _, err := s.appointments.UpdateStatus(ctx, id, domain.StatusApproved); err != nil {
		s.log.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}

	return nil
}

// Delete безусловно удаляет запись по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		s.log.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.log.Info("Delete: appointment id=%d removed", id)
	return nil
}

// resolveEmail разрешает идентификатор пользователя в email.
// Числовой идентификатор ищется среди аккаунтов; при неудаче
// идентификатор используется как есть (историческое поведение API,
// где user_id и email взаимозаменяемы).
func (s *Service) resolveEmail(ctx context.Context, identifier string) string {
	if strings.Contains(identifier, "@") {
		return identifier
	}

	id, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		return identifier
	}

	acct, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		s.log.Warn("resolveEmail: account id=%d not resolved, using raw identifier: %v", id, err)
		return identifier
	}

	return acct.Email
}

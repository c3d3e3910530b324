package janitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tigerbarber/appointment-service/internal/domain"
)

// ErrPurge возвращается при ошибке уборки устаревших записей
var ErrPurge = errors.New("janitor: purge failed")

// Таймаут одной плановой уборки
const purgeTimeout = 30 * time.Second

// Janitor удаляет записи с датой в прошлом. Основной режим работы —
// попутная уборка в начале каждого чтения полного списка записей;
// опционально добавляется cron-расписание для инсталляций без
// регулярного трафика чтения.
type Janitor struct {
	appointments AppointmentRepository
	timeProvider TimeProvider
	log          Logger
}

// New создает новый экземпляр уборщика
func New(appointments AppointmentRepository, log Logger) *Janitor {
	return &Janitor{
		appointments: appointments,
		timeProvider: &RealTimeProvider{},
		log:          log,
	}
}

// PurgePast удаляет все записи с датой строго раньше сегодняшней,
// независимо от статуса
func (j *Janitor) PurgePast(ctx context.Context) error {
	today := j.timeProvider.Now().Format(domain.DateFormat)

	if err := j.appointments.DeletePast(ctx, today); err != nil {
		return fmt.Errorf("%w: %v", ErrPurge, err)
	}

	j.log.Info("PurgePast: removed appointments dated before %s", today)
	return nil
}

// Schedule запускает периодическую уборку по cron-расписанию.
// Возвращённый cron останавливает вызывающая сторона при завершении.
func (j *Janitor) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		if err := j.PurgePast(ctx); err != nil {
			j.log.Warn("Schedule: scheduled purge failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("janitor: invalid schedule %q: %w", spec, err)
	}

	c.Start()
	j.log.Info("Schedule: scheduled purge enabled with spec %q", spec)
	return c, nil
}

package create_appointment

import (
	"fmt"
	"time"

	"github.com/tigerbarber/appointment-service/internal/domain"
	"github.com/tigerbarber/appointment-service/pkg/types"
)

// validateRequest валидирует обязательные поля и форматы даты и времени
func validateRequest(req *Request) (types.TimeString, error) {
	if req.Date == "" || req.Time == "" {
		return "", ErrMissingFields
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	tod, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	return tod, nil
}

// normalizeStatus приводит статус запроса к закрытому перечислению.
// Пустой и нераспознанный статус приводятся к pending: создание —
// клиентский путь, исторически он не отклонял такие значения.
func normalizeStatus(raw string, log Logger) domain.Status {
	if raw == "" {
		return domain.StatusPending
	}

	status, err := domain.ParseStatus(raw)
	if err != nil {
		log.Warn("CreateAppointment: unrecognized status %q coerced to pending", raw)
		return domain.StatusPending
	}

	return status
}

package appointments

import (
	"context"

	"github.com/tigerbarber/appointment-service/internal/domain"
)

// enrich дополняет записи отображаемым именем капстера (name, затем alias,
// затем "Unknown"). Ошибка чтения списка капстеров не прерывает выдачу:
// записи возвращаются без обогащения, ошибка логируется как warning.
func (s *Service) enrich(ctx context.Context, appts []*domain.Appointment) []*domain.Appointment {
	if len(appts) == 0 {
		return appts
	}

	capsters, err := s.capsters.List(ctx)
	if err != nil {
		s.log.Warn("enrich: capster list unavailable, returning appointments unenriched: %v", err)
		return appts
	}

	names := make(map[int64]string, len(capsters))
	for _, c := range capsters {
		names[c.ID] = c.DisplayName()
	}

	for _, a := range appts {
		a.CapsterName = domain.UnknownCapsterName
		if a.CapsterID != nil {
			if name, ok := names[*a.CapsterID]; ok {
				a.CapsterName = name
			}
		}
	}

	return appts
}

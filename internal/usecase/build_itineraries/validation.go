package build_itineraries

import (
	"fmt"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до любых обращений к каталогу и хранилищам
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) > domain.MaxServicesPerRequest {
		return fmt.Errorf("%w: at most %d services per request", ErrInvalidInput, domain.MaxServicesPerRequest)
	}

	seen := make(map[int64]bool, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate serviceID %d", ErrInvalidInput, id)
		}
		seen[id] = true
	}

	if req.ProfessionalsRequested < 1 || req.ProfessionalsRequested > 2 {
		return fmt.Errorf("%w: professionalsRequested must be 1 or 2", ErrInvalidInput)
	}

	for _, id := range req.RestrictProfessionals {
		if id <= 0 {
			return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	year := req.Date.Year()
	if year < domain.MinQueryYear || year > domain.MaxQueryYear {
		return fmt.Errorf("%w: year %d is outside [%d, %d]",
			ErrInvalidDate, year, domain.MinQueryYear, domain.MaxQueryYear)
	}

	return nil
}

package create_appointment

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

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StationID != nil && *req.StationID <= 0 {
		return fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	year := req.Date.Year()
	if year < domain.MinQueryYear || year > domain.MaxQueryYear {
		return fmt.Errorf("%w: year %d is outside [%d, %d]",
			ErrInvalidDate, year, domain.MinQueryYear, domain.MaxQueryYear)
	}

	if _, err := req.Start.Minutes(); err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.Start)
	}

	return nil
}

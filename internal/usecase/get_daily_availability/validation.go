package get_daily_availability

import (
	"fmt"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до любых обращений к хранилищам
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
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

package get_service_availability

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

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.ExcludeClientID != nil && *req.ExcludeClientID <= 0 {
		return fmt.Errorf("%w: excludeClientID must be positive", ErrInvalidInput)
	}

	if req.Year < domain.MinQueryYear || req.Year > domain.MaxQueryYear {
		return fmt.Errorf("%w: year %d is outside [%d, %d]",
			ErrInvalidPeriod, req.Year, domain.MinQueryYear, domain.MaxQueryYear)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month %d is outside [1, 12]", ErrInvalidPeriod, req.Month)
	}

	return nil
}

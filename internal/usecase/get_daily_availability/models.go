package get_daily_availability

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// Request модель запроса поблочной доступности мастера на дату
type Request struct {
	TenantID        int64     // ID салона
	ProfessionalID  int64     // ID мастера
	Date            time.Time // Дата (без времени)
	ExcludeClientID *int64    // Записи этого клиента не блокируют слоты (опционально)
}

// Response модель ответа с блоками дня
type Response struct {
	TenantID       int64
	ProfessionalID int64
	Date           time.Time
	Blocks         []Block
}

// Block один блок расписания мастера
type Block struct {
	Start                 types.TimeString
	End                   types.TimeString
	Available             bool
	BlockingAppointmentID *int64 // ID записи, занимающей блок (если занят записью)
}

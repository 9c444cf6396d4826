package create_appointment

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	TenantID       int64            // ID салона
	ClientID       int64            // ID клиента
	ProfessionalID int64            // ID мастера
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (без времени)
	Start          types.TimeString // Время начала ("HH:MM")
	StationID      *int64           // Станция (опционально)
	Notes          *string          // Заметки клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64
	TenantID       int64
	ClientID       int64
	ProfessionalID int64
	ServiceID      int64
	StationID      *int64
	Date           time.Time
	Start          types.TimeString
	End            types.TimeString
	Status         string
	ServiceName    string
	ServicePrice   float64
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package scheduling

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// DaySnapshot все календарные данные одного мастера на одну дату
// Выбирается из хранилищ один раз в начале запроса; движок работает
// только с неизменяемым снимком и ничего не мутирует
type DaySnapshot struct {
	ProfessionalID   int64
	Date             time.Time
	BlockSizeMinutes int
	WorkingWindows   []domain.WorkingWindow
	Breaks           []domain.BreakWindow
	BlockedPeriods   []domain.BlockedPeriod
	Appointments     []domain.BookedAppointment
}

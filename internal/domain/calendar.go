package domain

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// WorkingWindow recurring weekly working hours of a professional
type WorkingWindow struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      time.Weekday
	Start          types.TimeString
	End            types.TimeString
}

// BreakWindow recurring weekly break of a professional
// Перерыв не обязан лежать внутри рабочего окна: при генерации блоков
// он применяется простой проверкой пересечения, без валидации рабочих часов
type BreakWindow struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      time.Weekday
	Start          types.TimeString
	End            types.TimeString
}

// BlockedPeriodKind вид разовой блокировки
type BlockedPeriodKind string

const (
	BlockBreak     BlockedPeriodKind = "BREAK"
	BlockVacation  BlockedPeriodKind = "VACATION"
	BlockSickLeave BlockedPeriodKind = "SICK_LEAVE"
	BlockDayOff    BlockedPeriodKind = "DAY_OFF"
	BlockOther     BlockedPeriodKind = "OTHER"
)

// FullDayKinds виды блокировок, обнуляющие весь день целиком
var FullDayKinds = []BlockedPeriodKind{
	BlockVacation,
	BlockSickLeave,
	BlockDayOff,
}

// IsFullDay returns true if this kind voids the whole day
func (k BlockedPeriodKind) IsFullDay() bool {
	for _, fd := range FullDayKinds {
		if k == fd {
			return true
		}
	}
	return false
}

// BlockedPeriod разовая блокировка времени мастера на конкретную дату
// Start/End могут быть nil: такая блокировка покрывает весь день
type BlockedPeriod struct {
	ID             int64
	ProfessionalID int64
	Date           time.Time
	Start          *types.TimeString
	End            *types.TimeString
	Kind           BlockedPeriodKind
}

// CoversWholeDay returns true if the period has no explicit time bounds
func (p *BlockedPeriod) CoversWholeDay() bool {
	return p.Start == nil || p.End == nil
}

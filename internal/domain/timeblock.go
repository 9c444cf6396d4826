package domain

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// TimeBlock represents one fixed-size block of a professional's working day
type TimeBlock struct {
	Start     types.TimeString
	End       types.TimeString
	Available bool

	// BlockingAppointmentID ID записи, занимающей блок (если блок занят записью)
	BlockingAppointmentID *int64
}

// TimeWindow represents a continuous [Start, End) time range within one day
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// DailyAvailability поблочная доступность одного мастера на одну дату
type DailyAvailability struct {
	Date  time.Time
	Slots []TimeBlock
}

// ServiceAvailability окна одной даты, в которые помещается услуга заданной длительности
type ServiceAvailability struct {
	Date    time.Time
	Windows []TimeWindow
}

// Overlaps проверяет пересечение двух полуинтервалов [s1, e1) и [s2, e2)
// Границы не считаются пересечением: блок, заканчивающийся ровно там,
// где начинается другой, не пересекается с ним
func Overlaps(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && e1.IsAfter(s2)
}

package domain

import (
	"time"

	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled         AppointmentStatus = "scheduled"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusInProgress        AppointmentStatus = "in_progress"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledBySalon  AppointmentStatus = "cancelled_by_salon"
	StatusNoShow            AppointmentStatus = "no_show"
)

// ActiveStatuses статусы, в которых запись занимает время мастера
// Используется при вычислении недоступности блоков
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
}

// BookedAppointment represents a client's appointment with a professional
type BookedAppointment struct {
	ID             int64
	TenantID       int64
	ProfessionalID int64
	ClientID       int64
	ServiceID      int64
	StationID      *int64
	Date           time.Time
	Start          types.TimeString
	End            types.TimeString
	Status         AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment blocks the professional's time
func (a *BookedAppointment) IsActive() bool {
	for _, s := range ActiveStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *BookedAppointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// AppointmentsFilter фильтр выборки записей мастера
type AppointmentsFilter struct {
	ProfessionalID  int64
	StartDate       *time.Time // Начало периода (включительно)
	EndDate         *time.Time // Конец периода (включительно)
	OnlyActive      bool       // Только записи в активных статусах
	ExcludeClientID *int64     // Исключить записи этого клиента из выборки
}

package cancel_appointment

import (
	"github.com/m04kA/BMS-SchedulingService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	ClientID           int64  `json:"clientId"`
	BySalon            bool   `json:"bySalon,omitempty"`
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		ClientID:           r.ClientID,
		BySalon:            r.BySalon,
		CancellationReason: r.CancellationReason,
	}
}

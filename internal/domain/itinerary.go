package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// ExecutionType способ выполнения набора услуг
type ExecutionType string

const (
	ExecutionParallel   ExecutionType = "PARALLEL"
	ExecutionSequential ExecutionType = "SEQUENTIAL"
)

// ResourceCombination допустимая комбинация ресурсов для набора услуг:
// мастера (один или два), закрепленные станции по типам и способ выполнения
type ResourceCombination struct {
	Services          []ServiceRequirement
	ProfessionalIDs   []int64
	StationAssignment map[string][]int64 // тип станции -> ID станций
	ExecutionType     ExecutionType
}

// ServiceAssignment назначение одной услуги внутри маршрута
type ServiceAssignment struct {
	ServiceID      int64
	ProfessionalID int64
	StationID      *int64
	Start          types.TimeString
	End            types.TimeString
	Price          float64
}

// WizardItinerary конкретное предложение мульти-сервисной записи:
// дата, время, назначения услуг мастерам и станциям
type WizardItinerary struct {
	ID                   string
	Date                 time.Time
	Start                types.TimeString
	End                  types.TimeString
	TotalDurationMinutes int
	TotalPrice           float64
	ExecutionType        ExecutionType
	ServiceAssignments   []ServiceAssignment
}

// ItineraryID детерминированный идентификатор маршрута
// Чистая функция от (даты, времени начала, отсортированных ID услуг, способа выполнения):
// маршруты, различающиеся только мастерами или станциями, получают одинаковый ID
// и схлопываются при дедупликации
func ItineraryID(date time.Time, start types.TimeString, serviceIDs []int64, execType ExecutionType) string {
	sorted := make([]int64, len(serviceIDs))
	copy(sorted, serviceIDs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, 0, len(sorted)+3)
	parts = append(parts, date.Format(DateFormat), start.String())
	for _, id := range sorted {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	parts = append(parts, string(execType))

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:8])
}

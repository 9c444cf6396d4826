package domain

// ServiceRequirement развернутые требования одной запрошенной услуги:
// длительность, параллелизуемость, потребность в станциях и квалификация мастеров
type ServiceRequirement struct {
	ServiceID                int64
	Name                     string
	DurationMinutes          int
	Parallelizable           bool
	MaxParallelProfessionals int
	StationNeeds             map[string]int // тип станции -> количество
	QualifiedProfessionalIDs []int64
	Price                    float64
}

// IsQualified returns true if the professional is qualified for this service
func (r *ServiceRequirement) IsQualified(professionalID int64) bool {
	for _, id := range r.QualifiedProfessionalIDs {
		if id == professionalID {
			return true
		}
	}
	return false
}

package catalogservice

// Service модель услуги из CatalogService
type Service struct {
	ID                       int64          `json:"id"`
	TenantID                 int64          `json:"tenant_id"`
	Name                     string         `json:"name"`
	DurationMinutes          int            `json:"duration_minutes"`
	Parallelizable           bool           `json:"parallelizable"`
	MaxParallelProfessionals int            `json:"max_parallel_professionals"`
	StationNeeds             map[string]int `json:"station_needs"` // тип станции -> количество
	QualifiedProfessionalIDs []int64        `json:"qualified_professional_ids"`
	Price                    float64        `json:"price"`
	IsActive                 bool           `json:"is_active"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

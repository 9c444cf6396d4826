package domain

import "time"

// Station рабочая станция салона (кресло, мойка, маникюрный стол)
type Station struct {
	ID        int64
	TenantID  int64
	Type      string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

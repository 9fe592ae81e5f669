package supplements

import (
	"time"

	"health-tracking-api/internal/domain/schedule"
)

// Supplement es el régimen de un suplemento: qué se toma, cuánto y
// con qué recurrencia. La recurrencia es el schedule.Schedule
// compartido con péptidos.
type Supplement struct {
	ID string

	Name   string
	Dosage string // texto libre: "500", "1 cápsula"
	Unit   string // "mg", "ui", etc.

	Schedule schedule.Schedule

	Notes     string
	StartDate *time.Time
	EndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

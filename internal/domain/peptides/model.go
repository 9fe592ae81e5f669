package peptides

import (
	"time"

	"health-tracking-api/internal/domain/schedule"
)

// Peptide es el régimen de un péptido reconstituido. CalculatedIU es
// derivado: se recalcula con dosage.Compute en cada create/update,
// nunca se confía en lo que mande el cliente.
type Peptide struct {
	ID string

	Name string

	VialAmountMG float64 // mg del vial
	BACWaterML   float64 // ml de diluyente
	DoseMcg      float64 // dosis objetivo

	InjectionNeedleSize string
	CalculatedIU        float64 // redondeado a 2 decimales para display

	Schedule schedule.Schedule

	Notes     string
	StartDate *time.Time
	EndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

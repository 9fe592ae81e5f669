package bodycomp

import "time"

// Record representa una medición de peso y composición corporal de un día.
type Record struct {
	ID string

	Date   time.Time // día calendario (00:00 UTC)
	Weight float64

	BodyFatPercentage *float64
	MuscleMass        *float64
	WaterPercentage   *float64
	BoneMass          *float64
	BMI               *float64

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

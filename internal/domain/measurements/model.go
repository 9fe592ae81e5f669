package measurements

import "time"

// Record guarda las medidas corporales (en cm) de una fecha.
// Zonas no medidas quedan en nil; medidas fuera del set fijo van en
// OtherMeasurements con el nombre que haya usado el form.
type Record struct {
	ID string

	Date time.Time

	Chest *float64
	Waist *float64
	Hips  *float64
	Arms  *float64
	Legs  *float64

	OtherMeasurements map[string]float64

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

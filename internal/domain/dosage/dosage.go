package dosage

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Jeringa U-100: 100 unidades equivalen a 1 ml.
// Si algún día se soportan otras escalas, esto pasa a ser parámetro.
const unitsPerML = 100

// VialSpec describe un vial reconstituido.
type VialSpec struct {
	AmountMG  float64 // mg totales del compuesto
	DiluentML float64 // ml de agua bacteriostática
}

// DoseRequest es la dosis objetivo a administrar.
type DoseRequest struct {
	DoseMcg float64
}

// Result es derivado, nunca se cachea: se recalcula en cada llamada.
type Result struct {
	ConcentrationMcgPerML float64
	VolumeML              float64
	SyringeUnits          float64
}

// Compute convierte vial + dosis objetivo en volumen inyectable y
// lectura de jeringa. Función pura: sin estado, sin redondeo interno.
func Compute(v VialSpec, d DoseRequest) (Result, error) {
	if v.AmountMG <= 0 {
		return Result{}, fmt.Errorf("%w: vial_amount_mg must be greater than 0", ErrInvalidInput)
	}
	if v.DiluentML <= 0 {
		return Result{}, fmt.Errorf("%w: bac_water_ml must be greater than 0", ErrInvalidInput)
	}
	if d.DoseMcg <= 0 {
		return Result{}, fmt.Errorf("%w: dose_mcg must be greater than 0", ErrInvalidInput)
	}

	concentration := v.AmountMG * 1000 / v.DiluentML // mcg/ml
	volume := d.DoseMcg / concentration              // ml

	return Result{
		ConcentrationMcgPerML: concentration,
		VolumeML:              volume,
		SyringeUnits:          volume * unitsPerML,
	}, nil
}

// Round es el redondeo de presentación. Todos los sitios que muestran
// un Result pasan por acá con la misma precisión, así inputs iguales
// siempre renderizan igual.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

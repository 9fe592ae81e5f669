package dosage

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCompute_KnownCases(t *testing.T) {
	cases := []struct {
		name          string
		vial          VialSpec
		dose          DoseRequest
		concentration float64
		volumeML      float64
		units         float64
	}{
		{
			name:          "5mg en 2ml, dosis 250mcg",
			vial:          VialSpec{AmountMG: 5, DiluentML: 2},
			dose:          DoseRequest{DoseMcg: 250},
			concentration: 2500,
			volumeML:      0.1,
			units:         10,
		},
		{
			name:          "10mg en 1ml, dosis 500mcg",
			vial:          VialSpec{AmountMG: 10, DiluentML: 1},
			dose:          DoseRequest{DoseMcg: 500},
			concentration: 10000,
			volumeML:      0.05,
			units:         5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(tc.vial, tc.dose)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got.ConcentrationMcgPerML, tc.concentration) {
				t.Errorf("concentration = %v, want %v", got.ConcentrationMcgPerML, tc.concentration)
			}
			if !almostEqual(got.VolumeML, tc.volumeML) {
				t.Errorf("volume = %v, want %v", got.VolumeML, tc.volumeML)
			}
			if !almostEqual(got.SyringeUnits, tc.units) {
				t.Errorf("syringe units = %v, want %v", got.SyringeUnits, tc.units)
			}
		})
	}
}

func TestCompute_DerivedIdentity(t *testing.T) {
	// units == dose*100/concentration debe cumplirse para cualquier input válido
	vials := []VialSpec{
		{AmountMG: 5, DiluentML: 2},
		{AmountMG: 10, DiluentML: 1},
		{AmountMG: 2.5, DiluentML: 3},
		{AmountMG: 0.5, DiluentML: 1.5},
	}
	doses := []float64{50, 125, 250, 1000}

	for _, v := range vials {
		for _, d := range doses {
			got, err := Compute(v, DoseRequest{DoseMcg: d})
			if err != nil {
				t.Fatalf("Compute(%+v, %v): %v", v, d, err)
			}
			want := d * 100 / got.ConcentrationMcgPerML
			if !almostEqual(got.SyringeUnits, want) {
				t.Errorf("Compute(%+v, %v): units = %v, want %v", v, d, got.SyringeUnits, want)
			}
			if got.VolumeML <= 0 || math.IsInf(got.VolumeML, 0) || math.IsNaN(got.VolumeML) {
				t.Errorf("Compute(%+v, %v): volume fuera de rango: %v", v, d, got.VolumeML)
			}
		}
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		vial  VialSpec
		dose  DoseRequest
		field string
	}{
		{"vial amount cero", VialSpec{AmountMG: 0, DiluentML: 2}, DoseRequest{DoseMcg: 250}, "vial_amount_mg"},
		{"vial amount negativo", VialSpec{AmountMG: -5, DiluentML: 2}, DoseRequest{DoseMcg: 250}, "vial_amount_mg"},
		{"diluyente cero", VialSpec{AmountMG: 5, DiluentML: 0}, DoseRequest{DoseMcg: 250}, "bac_water_ml"},
		{"diluyente negativo", VialSpec{AmountMG: 5, DiluentML: -1}, DoseRequest{DoseMcg: 250}, "bac_water_ml"},
		{"dosis cero", VialSpec{AmountMG: 5, DiluentML: 2}, DoseRequest{DoseMcg: 0}, "dose_mcg"},
		{"dosis negativa", VialSpec{AmountMG: 5, DiluentML: 2}, DoseRequest{DoseMcg: -250}, "dose_mcg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.vial, tc.dose)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should name field %q", err.Error(), tc.field)
			}
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	v := VialSpec{AmountMG: 7.5, DiluentML: 2.2}
	d := DoseRequest{DoseMcg: 333}

	a, err := Compute(v, d)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(v, d)
	if err != nil {
		t.Fatal(err)
	}
	// Idéntico bit a bit, no solo aproximado
	if a != b {
		t.Errorf("Compute no es determinista: %+v vs %+v", a, b)
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{0.1, 2, 0.1},
		{0.125, 2, 0.13},
		{10.004, 2, 10.0},
		{0.05009, 4, 0.0501},
		{2500.0, 2, 2500.0},
	}
	for _, tc := range cases {
		if got := Round(tc.v, tc.decimals); got != tc.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tc.v, tc.decimals, got, tc.want)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

package markers

import "time"

// Los paneles son sub-documentos del registro; los tags json son la
// forma persistida (JSONB) y la misma que viaja en la API.

type BloodPressure struct {
	Systolic  int  `json:"systolic"`
	Diastolic int  `json:"diastolic"`
	Pulse     *int `json:"pulse,omitempty"`
}

type LipidPanel struct {
	TotalCholesterol         float64  `json:"total_cholesterol"`
	HDL                      float64  `json:"hdl"`
	LDL                      float64  `json:"ldl"`
	Triglycerides            float64  `json:"triglycerides"`
	TotalCholesterolHDLRatio *float64 `json:"total_cholesterol_hdl_ratio,omitempty"`
}

type CBCPanel struct {
	WBC         float64        `json:"wbc"`
	RBC         float64        `json:"rbc"`
	Hemoglobin  float64        `json:"hemoglobin"`
	Hematocrit  float64        `json:"hematocrit"`
	Platelets   float64        `json:"platelets"`
	OtherValues map[string]any `json:"other_values,omitempty"`
}

// Record agrupa los marcadores de laboratorio de una fecha.
// Cada panel es opcional: un análisis puede traer solo lípidos, solo CBC, etc.
type Record struct {
	ID string

	Date time.Time

	BloodPressure *BloodPressure
	LipidPanel    *LipidPanel
	CBCPanel      *CBCPanel
	OtherMarkers  map[string]any

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-tracking-api/internal/router"
)

func TestHTTP_BodyComposition_CRUD(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Crear registro
	st, body := doReq(t, ts.URL, "POST", "/api/body-composition", map[string]any{
		"date":                "2025-06-01",
		"weight":              82.5,
		"body_fat_percentage": 18.2,
		"notes":               "ayunas",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create, got %d body=%s", st, string(body))
	}
	id := extractID(t, body)

	// 2) Get por id
	{
		st, body := doReq(t, ts.URL, "GET", "/api/body-composition/"+id, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get, got %d body=%s", st, string(body))
		}
		var resp struct {
			Date   string  `json:"date"`
			Weight float64 `json:"weight"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Date != "2025-06-01" || resp.Weight != 82.5 {
			t.Errorf("get devolvió %+v", resp)
		}
	}

	// 3) Más registros para probar orden y paginado
	for _, d := range []string{"2025-06-03", "2025-06-02"} {
		st, body := doReq(t, ts.URL, "POST", "/api/body-composition", map[string]any{
			"date":   d,
			"weight": 82.0,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create %s, got %d body=%s", d, st, string(body))
		}
	}

	// 4) Lista: fecha descendente, limit respetado
	{
		st, body := doReq(t, ts.URL, "GET", "/api/body-composition?limit=2", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var items []struct {
			Date string `json:"date"`
		}
		mustUnmarshal(t, body, &items)
		if len(items) != 2 {
			t.Fatalf("limit=2 devolvió %d items", len(items))
		}
		if items[0].Date != "2025-06-03" || items[1].Date != "2025-06-02" {
			t.Errorf("orden inesperado: %+v", items)
		}
	}

	// 5) Update completo (PUT)
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/body-composition/"+id, map[string]any{
			"date":   "2025-06-01",
			"weight": 81.9,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put, got %d body=%s", st, string(body))
		}
		var resp struct {
			Weight float64 `json:"weight"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Weight != 81.9 {
			t.Errorf("weight tras update = %v", resp.Weight)
		}
	}

	// 6) Peso inválido => 400
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/body-composition/"+id, map[string]any{
			"date":   "2025-06-01",
			"weight": 0,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for weight=0, got %d", st)
		}
	}

	// 7) Delete y get posterior => 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/body-composition/"+id, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/body-composition/"+id, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/api/body-composition/"+id, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 double delete, got %d", st)
		}
	}
}

func TestHTTP_Peptides_CalculatorAndCRUD(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Calculadora pura: 5mg / 2ml / 250mcg
	{
		st, body := doReq(t, ts.URL, "POST", "/api/peptides/calculate-iu", map[string]any{
			"vial_amount_mg": 5,
			"bac_water_ml":   2,
			"dose_mcg":       250,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 calculate, got %d body=%s", st, string(body))
		}
		var resp struct {
			IU      float64 `json:"iu"`
			Details struct {
				VialAmountMcg      float64 `json:"vial_amount_mcg"`
				ConcentrationMcgML float64 `json:"concentration_mcg_ml"`
				VolumeML           float64 `json:"volume_ml"`
			} `json:"details"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.IU != 10 {
			t.Errorf("iu = %v, want 10", resp.IU)
		}
		if resp.Details.VialAmountMcg != 5000 || resp.Details.ConcentrationMcgML != 2500 || resp.Details.VolumeML != 0.1 {
			t.Errorf("details = %+v", resp.Details)
		}
	}

	// 2) Input inválido => 400 nombrando el campo
	{
		st, body := doReq(t, ts.URL, "POST", "/api/peptides/calculate-iu", map[string]any{
			"vial_amount_mg": 5,
			"bac_water_ml":   0,
			"dose_mcg":       250,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", st)
		}
		if !bytes.Contains(body, []byte("bac_water_ml")) {
			t.Errorf("error should name bac_water_ml, got %s", string(body))
		}
	}

	// 3) Crear péptido: el IU lo calcula el server
	st, body := doReq(t, ts.URL, "POST", "/api/peptides", map[string]any{
		"name":                  "BPC-157",
		"vial_amount_mg":        5,
		"bac_water_ml":          2,
		"dose_mcg":              250,
		"injection_needle_size": "31g",
		"schedule": map[string]any{
			"frequency":       "daily",
			"times_per_day":   1,
			"time_of_day":     []string{"morning"},
			"cycle_weeks_on":  4,
			"cycle_weeks_off": 2,
		},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create peptide, got %d body=%s", st, string(body))
	}

	var created struct {
		ID              string  `json:"id"`
		CalculatedIU    float64 `json:"calculated_iu"`
		ScheduleSummary string  `json:"schedule_summary"`
	}
	mustUnmarshal(t, body, &created)
	if created.CalculatedIU != 10 {
		t.Errorf("calculated_iu = %v, want 10", created.CalculatedIU)
	}
	if created.ScheduleSummary != "Daily, 1x/day (4 wk on, 2 wk off)" {
		t.Errorf("schedule_summary = %q", created.ScheduleSummary)
	}

	// 4) Update cambia vial/dosis => IU recalculado
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/peptides/"+created.ID, map[string]any{
			"name":                  "BPC-157",
			"vial_amount_mg":        10,
			"bac_water_ml":          1,
			"dose_mcg":              500,
			"injection_needle_size": "31g",
			"schedule": map[string]any{
				"frequency":     "daily",
				"times_per_day": 1,
			},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put peptide, got %d body=%s", st, string(body))
		}
		var resp struct {
			CalculatedIU    float64 `json:"calculated_iu"`
			ScheduleSummary string  `json:"schedule_summary"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.CalculatedIU != 5 {
			t.Errorf("calculated_iu tras update = %v, want 5", resp.CalculatedIU)
		}
		if resp.ScheduleSummary != "Daily, 1x/day" {
			t.Errorf("schedule_summary tras update = %q", resp.ScheduleSummary)
		}
	}

	// 5) Delete
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/peptides/"+created.ID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete peptide, got %d", st)
		}
	}
}

func TestHTTP_Supplements_ScheduleSummary(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) custom_days llega como texto separado por comas
	st, body := doReq(t, ts.URL, "POST", "/api/supplements", map[string]any{
		"name":   "Creatina",
		"dosage": "5",
		"unit":   "g",
		"schedule": map[string]any{
			"frequency":       "custom",
			"times_per_day":   2,
			"custom_days":     "Mon, Wed,Fri",
			"cycle_weeks_on":  4,
			"cycle_weeks_off": 2,
		},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create supplement, got %d body=%s", st, string(body))
	}

	var created struct {
		ID              string `json:"id"`
		ScheduleSummary string `json:"schedule_summary"`
		Schedule        struct {
			CustomDays []string `json:"custom_days"`
		} `json:"schedule"`
	}
	mustUnmarshal(t, body, &created)
	if created.ScheduleSummary != "Custom: Mon,Wed,Fri, 2x/day (4 wk on, 2 wk off)" {
		t.Errorf("schedule_summary = %q", created.ScheduleSummary)
	}
	if len(created.Schedule.CustomDays) != 3 || created.Schedule.CustomDays[0] != "Mon" {
		t.Errorf("custom_days = %v", created.Schedule.CustomDays)
	}

	// 2) Schedule inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/supplements", map[string]any{
			"name":   "Zinc",
			"dosage": "25",
			"unit":   "mg",
			"schedule": map[string]any{
				"frequency":     "daily",
				"times_per_day": 1,
				// ciclo a medias
				"cycle_weeks_on": 4,
			},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for dangling cycle, got %d", st)
		}
	}

	// 3) Lista ordenada por nombre ascendente
	{
		st, body := doReq(t, ts.URL, "POST", "/api/supplements", map[string]any{
			"name":   "Ashwagandha",
			"dosage": "600",
			"unit":   "mg",
			"schedule": map[string]any{
				"frequency":     "daily",
				"times_per_day": 1,
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/api/supplements", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var items []struct {
			Name string `json:"name"`
		}
		mustUnmarshal(t, body, &items)
		if len(items) != 2 || items[0].Name != "Ashwagandha" || items[1].Name != "Creatina" {
			t.Errorf("orden inesperado: %+v", items)
		}
	}
}

func TestHTTP_HealthMarkers_Panels(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/api/health-markers", map[string]any{
		"date": "2025-06-01",
		"blood_pressure": map[string]any{
			"systolic":  120,
			"diastolic": 78,
			"pulse":     61,
		},
		"lipid_panel": map[string]any{
			"total_cholesterol": 182.0,
			"hdl":               55.0,
			"ldl":               110.0,
			"triglycerides":     85.0,
		},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create marker, got %d body=%s", st, string(body))
	}
	id := extractID(t, body)

	st, body = doReq(t, ts.URL, "GET", "/api/health-markers/"+id, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get marker, got %d", st)
	}
	var resp struct {
		BloodPressure *struct {
			Systolic int `json:"systolic"`
		} `json:"blood_pressure"`
		CBCPanel *struct{} `json:"cbc_panel"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.BloodPressure == nil || resp.BloodPressure.Systolic != 120 {
		t.Errorf("blood_pressure = %+v", resp.BloodPressure)
	}
	if resp.CBCPanel != nil {
		t.Error("cbc_panel debería ser omitido cuando no se cargó")
	}

	// presión inválida => 400
	st, _ = doReq(t, ts.URL, "POST", "/api/health-markers", map[string]any{
		"date": "2025-06-01",
		"blood_pressure": map[string]any{
			"systolic":  0,
			"diastolic": 78,
		},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for systolic=0, got %d", st)
	}
}

func TestHTTP_Root(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/api/", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 root, got %d", st)
	}
	var resp struct {
		Message string `json:"message"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.Message != "Health Tracking API" {
		t.Errorf("message = %q", resp.Message)
	}
}

func doReq(t *testing.T, baseURL, method, path string, payload map[string]any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, body
}

func extractID(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("missing id in body=%s", string(body))
	}
	return resp.ID
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(body), err)
	}
}

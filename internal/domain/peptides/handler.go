package peptides

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"health-tracking-api/internal/domain/dosage"
	"health-tracking-api/internal/domain/schedule"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/peptides", func(pr chi.Router) {
		// Calculadora pura, sin persistencia: la usa el form en vivo.
		pr.Post("/calculate-iu", calculateHandler())

		pr.Post("/", createHandler(svc))
		pr.Get("/", listHandler(svc))
		pr.Get("/{peptideID}", getHandler(svc))
		pr.Put("/{peptideID}", updateHandler(svc))
		pr.Delete("/{peptideID}", deleteHandler(svc))
	})
}

type calculateRequest struct {
	VialAmountMG float64 `json:"vial_amount_mg"`
	BACWaterML   float64 `json:"bac_water_ml"`
	DoseMcg      float64 `json:"dose_mcg"`
}

type calculateResponse struct {
	IU      float64          `json:"iu"`
	Details calculateDetails `json:"details"`
}

type calculateDetails struct {
	VialAmountMcg      float64 `json:"vial_amount_mcg"`
	ConcentrationMcgML float64 `json:"concentration_mcg_ml"`
	VolumeML           float64 `json:"volume_ml"`
}

type scheduleRequest struct {
	Frequency     string   `json:"frequency"`
	TimesPerDay   int      `json:"times_per_day"`
	TimeOfDay     []string `json:"time_of_day"`
	CycleWeeksOn  *int     `json:"cycle_weeks_on"`
	CycleWeeksOff *int     `json:"cycle_weeks_off"`
	CustomDays    string   `json:"custom_days"`  // texto separado por comas
	CustomTimes   string   `json:"custom_times"` // idem
}

func (req scheduleRequest) toSchedule() (schedule.Schedule, error) {
	return schedule.FromForm(
		req.Frequency,
		req.TimesPerDay,
		req.TimeOfDay,
		req.CycleWeeksOn,
		req.CycleWeeksOff,
		req.CustomDays,
		req.CustomTimes,
	)
}

type peptideRequest struct {
	Name                string          `json:"name"`
	VialAmountMG        float64         `json:"vial_amount_mg"`
	BACWaterML          float64         `json:"bac_water_ml"`
	DoseMcg             float64         `json:"dose_mcg"`
	InjectionNeedleSize string          `json:"injection_needle_size"`
	Schedule            scheduleRequest `json:"schedule"`
	Notes               string          `json:"notes"`
	StartDate           string          `json:"start_date"` // YYYY-MM-DD opcional
	EndDate             string          `json:"end_date"`   // YYYY-MM-DD opcional
}

type peptideResponse struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	VialAmountMG        float64           `json:"vial_amount_mg"`
	BACWaterML          float64           `json:"bac_water_ml"`
	DoseMcg             float64           `json:"dose_mcg"`
	InjectionNeedleSize string            `json:"injection_needle_size"`
	CalculatedIU        float64           `json:"calculated_iu"`
	Schedule            schedule.Schedule `json:"schedule"`
	ScheduleSummary     string            `json:"schedule_summary"`
	Notes               string            `json:"notes"`
	StartDate           *string           `json:"start_date,omitempty"`
	EndDate             *string           `json:"end_date,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func (req peptideRequest) toInput() (Input, error) {
	sched, err := req.Schedule.toSchedule()
	if err != nil {
		return Input{}, err
	}

	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return Input{}, errors.New("start_date must be YYYY-MM-DD")
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return Input{}, errors.New("end_date must be YYYY-MM-DD")
	}

	return Input{
		Name:                req.Name,
		VialAmountMG:        req.VialAmountMG,
		BACWaterML:          req.BACWaterML,
		DoseMcg:             req.DoseMcg,
		InjectionNeedleSize: req.InjectionNeedleSize,
		Schedule:            sched,
		Notes:               req.Notes,
		StartDate:           start,
		EndDate:             end,
	}, nil
}

func calculateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req calculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := dosage.Compute(
			dosage.VialSpec{AmountMG: req.VialAmountMG, DiluentML: req.BACWaterML},
			dosage.DoseRequest{DoseMcg: req.DoseMcg},
		)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, calculateResponse{
			IU: dosage.Round(res.SyringeUnits, 2),
			Details: calculateDetails{
				VialAmountMcg:      req.VialAmountMG * 1000,
				ConcentrationMcgML: dosage.Round(res.ConcentrationMcgPerML, 2),
				VolumeML:           dosage.Round(res.VolumeML, 4),
			},
		})
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req peptideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(p))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))

		items, err := svc.List(r.Context(), limit, skip)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]peptideResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "peptideID"))
		if err != nil {
			http.Error(w, "peptide not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req peptideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "peptideID"), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "peptideID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Peptide deleted successfully"})
	}
}

func toResponse(p Peptide) peptideResponse {
	sched := p.Schedule
	return peptideResponse{
		ID:                  p.ID,
		Name:                p.Name,
		VialAmountMG:        p.VialAmountMG,
		BACWaterML:          p.BACWaterML,
		DoseMcg:             p.DoseMcg,
		InjectionNeedleSize: p.InjectionNeedleSize,
		CalculatedIU:        p.CalculatedIU,
		Schedule:            sched,
		ScheduleSummary:     schedule.Summarize(&sched),
		Notes:               p.Notes,
		StartDate:           formatOptionalDate(p.StartDate),
		EndDate:             formatOptionalDate(p.EndDate),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, dosage.ErrInvalidInput),
		errors.Is(err, schedule.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "peptide not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que los DTOs: todavía no amerita un paquete helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

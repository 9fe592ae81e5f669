package supplements

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"health-tracking-api/internal/domain/schedule"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/supplements", func(sr chi.Router) {
		sr.Post("/", createHandler(svc))
		sr.Get("/", listHandler(svc))
		sr.Get("/{supplementID}", getHandler(svc))
		sr.Put("/{supplementID}", updateHandler(svc))
		sr.Delete("/{supplementID}", deleteHandler(svc))
	})
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

type supplementRequest struct {
	Name      string          `json:"name"`
	Dosage    string          `json:"dosage"`
	Unit      string          `json:"unit"`
	Schedule  scheduleRequest `json:"schedule"`
	Notes     string          `json:"notes"`
	StartDate string          `json:"start_date"` // YYYY-MM-DD opcional
	EndDate   string          `json:"end_date"`   // YYYY-MM-DD opcional
}

type supplementResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Dosage          string            `json:"dosage"`
	Unit            string            `json:"unit"`
	Schedule        schedule.Schedule `json:"schedule"`
	ScheduleSummary string            `json:"schedule_summary"`
	Notes           string            `json:"notes"`
	StartDate       *string           `json:"start_date,omitempty"`
	EndDate         *string           `json:"end_date,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (req supplementRequest) toInput() (Input, error) {
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
		Name:      req.Name,
		Dosage:    req.Dosage,
		Unit:      req.Unit,
		Schedule:  sched,
		Notes:     req.Notes,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req supplementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sup, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(sup))
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

		out := make([]supplementResponse, 0, len(items))
		for _, sup := range items {
			out = append(out, toResponse(sup))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sup, err := svc.GetByID(r.Context(), chi.URLParam(r, "supplementID"))
		if err != nil {
			http.Error(w, "supplement not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(sup))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req supplementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sup, err := svc.Update(r.Context(), chi.URLParam(r, "supplementID"), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toResponse(sup))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "supplementID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Supplement deleted successfully"})
	}
}

func toResponse(sup Supplement) supplementResponse {
	sched := sup.Schedule
	return supplementResponse{
		ID:              sup.ID,
		Name:            sup.Name,
		Dosage:          sup.Dosage,
		Unit:            sup.Unit,
		Schedule:        sched,
		ScheduleSummary: schedule.Summarize(&sched),
		Notes:           sup.Notes,
		StartDate:       formatOptionalDate(sup.StartDate),
		EndDate:         formatOptionalDate(sup.EndDate),
		CreatedAt:       sup.CreatedAt,
		UpdatedAt:       sup.UpdatedAt,
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
	case errors.Is(err, ErrInvalidInput), errors.Is(err, schedule.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "supplement not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

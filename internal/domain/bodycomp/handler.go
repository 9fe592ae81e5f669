package bodycomp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/body-composition", func(br chi.Router) {
		br.Post("/", createHandler(svc))
		br.Get("/", listHandler(svc))
		br.Get("/{recordID}", getHandler(svc))
		br.Put("/{recordID}", updateHandler(svc))
		br.Delete("/{recordID}", deleteHandler(svc))
	})
}

type recordRequest struct {
	Date              string   `json:"date"` // YYYY-MM-DD
	Weight            float64  `json:"weight"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	MuscleMass        *float64 `json:"muscle_mass"`
	WaterPercentage   *float64 `json:"water_percentage"`
	BoneMass          *float64 `json:"bone_mass"`
	BMI               *float64 `json:"bmi"`
	Notes             string   `json:"notes"`
}

type recordResponse struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"`
	Weight            float64   `json:"weight"`
	BodyFatPercentage *float64  `json:"body_fat_percentage,omitempty"`
	MuscleMass        *float64  `json:"muscle_mass,omitempty"`
	WaterPercentage   *float64  `json:"water_percentage,omitempty"`
	BoneMass          *float64  `json:"bone_mass,omitempty"`
	BMI               *float64  `json:"bmi,omitempty"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (req recordRequest) toInput() (Input, error) {
	d, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return Input{}, errors.New("date must be YYYY-MM-DD")
	}

	return Input{
		Date:              d,
		Weight:            req.Weight,
		BodyFatPercentage: req.BodyFatPercentage,
		MuscleMass:        req.MuscleMass,
		WaterPercentage:   req.WaterPercentage,
		BoneMass:          req.BoneMass,
		BMI:               req.BMI,
		Notes:             req.Notes,
	}, nil
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(rec))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, skip := listParams(r)

		items, err := svc.List(r.Context(), limit, skip)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			http.Error(w, "body composition not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(rec))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toResponse(rec))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Body composition deleted successfully"})
	}
}

func toResponse(rec Record) recordResponse {
	return recordResponse{
		ID:                rec.ID,
		Date:              rec.Date.Format("2006-01-02"),
		Weight:            rec.Weight,
		BodyFatPercentage: rec.BodyFatPercentage,
		MuscleMass:        rec.MuscleMass,
		WaterPercentage:   rec.WaterPercentage,
		BoneMass:          rec.BoneMass,
		BMI:               rec.BMI,
		Notes:             rec.Notes,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "body composition not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func listParams(r *http.Request) (limit, skip int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	return limit, skip
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package measurements

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/body-measurements", func(mr chi.Router) {
		mr.Post("/", createHandler(svc))
		mr.Get("/", listHandler(svc))
		mr.Get("/{measurementID}", getHandler(svc))
		mr.Put("/{measurementID}", updateHandler(svc))
		mr.Delete("/{measurementID}", deleteHandler(svc))
	})
}

type measurementRequest struct {
	Date              string             `json:"date"` // YYYY-MM-DD
	Chest             *float64           `json:"chest"`
	Waist             *float64           `json:"waist"`
	Hips              *float64           `json:"hips"`
	Arms              *float64           `json:"arms"`
	Legs              *float64           `json:"legs"`
	OtherMeasurements map[string]float64 `json:"other_measurements"`
	Notes             string             `json:"notes"`
}

type measurementResponse struct {
	ID                string             `json:"id"`
	Date              string             `json:"date"`
	Chest             *float64           `json:"chest,omitempty"`
	Waist             *float64           `json:"waist,omitempty"`
	Hips              *float64           `json:"hips,omitempty"`
	Arms              *float64           `json:"arms,omitempty"`
	Legs              *float64           `json:"legs,omitempty"`
	OtherMeasurements map[string]float64 `json:"other_measurements,omitempty"`
	Notes             string             `json:"notes"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func (req measurementRequest) toInput() (Input, error) {
	d, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return Input{}, errors.New("date must be YYYY-MM-DD")
	}

	return Input{
		Date:              d,
		Chest:             req.Chest,
		Waist:             req.Waist,
		Hips:              req.Hips,
		Arms:              req.Arms,
		Legs:              req.Legs,
		OtherMeasurements: req.OtherMeasurements,
		Notes:             req.Notes,
	}, nil
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req measurementRequest
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
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))

		items, err := svc.List(r.Context(), limit, skip)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]measurementResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "measurementID"))
		if err != nil {
			http.Error(w, "body measurement not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(rec))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req measurementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "measurementID"), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toResponse(rec))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "measurementID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Body measurement deleted successfully"})
	}
}

func toResponse(rec Record) measurementResponse {
	return measurementResponse{
		ID:                rec.ID,
		Date:              rec.Date.Format("2006-01-02"),
		Chest:             rec.Chest,
		Waist:             rec.Waist,
		Hips:              rec.Hips,
		Arms:              rec.Arms,
		Legs:              rec.Legs,
		OtherMeasurements: rec.OtherMeasurements,
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
		http.Error(w, "body measurement not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

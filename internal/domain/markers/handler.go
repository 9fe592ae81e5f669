package markers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health-markers", func(mr chi.Router) {
		mr.Post("/", createHandler(svc))
		mr.Get("/", listHandler(svc))
		mr.Get("/{markerID}", getHandler(svc))
		mr.Put("/{markerID}", updateHandler(svc))
		mr.Delete("/{markerID}", deleteHandler(svc))
	})
}

type markerRequest struct {
	Date          string         `json:"date"` // YYYY-MM-DD
	BloodPressure *BloodPressure `json:"blood_pressure"`
	LipidPanel    *LipidPanel    `json:"lipid_panel"`
	CBCPanel      *CBCPanel      `json:"cbc_panel"`
	OtherMarkers  map[string]any `json:"other_markers"`
	Notes         string         `json:"notes"`
}

type markerResponse struct {
	ID            string         `json:"id"`
	Date          string         `json:"date"`
	BloodPressure *BloodPressure `json:"blood_pressure,omitempty"`
	LipidPanel    *LipidPanel    `json:"lipid_panel,omitempty"`
	CBCPanel      *CBCPanel      `json:"cbc_panel,omitempty"`
	OtherMarkers  map[string]any `json:"other_markers,omitempty"`
	Notes         string         `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (req markerRequest) toInput() (Input, error) {
	d, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return Input{}, errors.New("date must be YYYY-MM-DD")
	}

	return Input{
		Date:          d,
		BloodPressure: req.BloodPressure,
		LipidPanel:    req.LipidPanel,
		CBCPanel:      req.CBCPanel,
		OtherMarkers:  req.OtherMarkers,
		Notes:         req.Notes,
	}, nil
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req markerRequest
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

		out := make([]markerResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "markerID"))
		if err != nil {
			http.Error(w, "health marker not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(rec))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req markerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "markerID"), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toResponse(rec))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "markerID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Health marker deleted successfully"})
	}
}

func toResponse(rec Record) markerResponse {
	return markerResponse{
		ID:            rec.ID,
		Date:          rec.Date.Format("2006-01-02"),
		BloodPressure: rec.BloodPressure,
		LipidPanel:    rec.LipidPanel,
		CBCPanel:      rec.CBCPanel,
		OtherMarkers:  rec.OtherMarkers,
		Notes:         rec.Notes,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "health marker not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

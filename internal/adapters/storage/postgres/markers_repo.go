package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"health-tracking-api/internal/domain/markers"
)

type MarkersRepo struct {
	db *sql.DB
}

func NewMarkersRepo(db *sql.DB) *MarkersRepo {
	return &MarkersRepo{db: db}
}

// Los paneles son JSONB: la forma del documento la dan los tags json
// del modelo, igual en la API y en la base.

func (r *MarkersRepo) Create(ctx context.Context, rec markers.Record) error {
	bp, lipid, cbc, other, err := marshalPanels(rec)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO health_markers (
			id, date,
			blood_pressure, lipid_panel, cbc_panel, other_markers,
			notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.Date,
		bp,
		lipid,
		cbc,
		other,
		rec.Notes,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *MarkersRepo) GetByID(ctx context.Context, id string) (markers.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return markers.Record{}, markers.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, date,
			blood_pressure, lipid_panel, cbc_panel, other_markers,
			notes, created_at, updated_at
		FROM health_markers
		WHERE id = $1
	`, id)

	rec, err := scanMarker(row)
	if err == sql.ErrNoRows {
		return markers.Record{}, markers.ErrNotFound
	}
	return rec, err
}

func (r *MarkersRepo) List(ctx context.Context, limit, skip int) ([]markers.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, date,
			blood_pressure, lipid_panel, cbc_panel, other_markers,
			notes, created_at, updated_at
		FROM health_markers
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]markers.Record, 0)
	for rows.Next() {
		rec, err := scanMarker(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *MarkersRepo) Update(ctx context.Context, rec markers.Record) error {
	bp, lipid, cbc, other, err := marshalPanels(rec)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE health_markers
		SET
			date = $2,
			blood_pressure = $3,
			lipid_panel = $4,
			cbc_panel = $5,
			other_markers = $6,
			notes = $7,
			updated_at = $8
		WHERE id = $1
	`,
		rec.ID,
		rec.Date,
		bp,
		lipid,
		cbc,
		other,
		rec.Notes,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return markers.ErrNotFound
	}
	return nil
}

func (r *MarkersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM health_markers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return markers.ErrNotFound
	}
	return nil
}

func marshalPanels(rec markers.Record) (bp, lipid, cbc, other []byte, err error) {
	if rec.BloodPressure != nil {
		if bp, err = json.Marshal(rec.BloodPressure); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	if rec.LipidPanel != nil {
		if lipid, err = json.Marshal(rec.LipidPanel); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	if rec.CBCPanel != nil {
		if cbc, err = json.Marshal(rec.CBCPanel); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	if rec.OtherMarkers != nil {
		if other, err = json.Marshal(rec.OtherMarkers); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	return bp, lipid, cbc, other, nil
}

func scanMarker(row rowScanner) (markers.Record, error) {
	var rec markers.Record
	var bp, lipid, cbc, other []byte

	if err := row.Scan(
		&rec.ID,
		&rec.Date,
		&bp,
		&lipid,
		&cbc,
		&other,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return markers.Record{}, err
	}

	if len(bp) > 0 {
		rec.BloodPressure = &markers.BloodPressure{}
		if err := json.Unmarshal(bp, rec.BloodPressure); err != nil {
			return markers.Record{}, err
		}
	}
	if len(lipid) > 0 {
		rec.LipidPanel = &markers.LipidPanel{}
		if err := json.Unmarshal(lipid, rec.LipidPanel); err != nil {
			return markers.Record{}, err
		}
	}
	if len(cbc) > 0 {
		rec.CBCPanel = &markers.CBCPanel{}
		if err := json.Unmarshal(cbc, rec.CBCPanel); err != nil {
			return markers.Record{}, err
		}
	}
	if len(other) > 0 {
		if err := json.Unmarshal(other, &rec.OtherMarkers); err != nil {
			return markers.Record{}, err
		}
	}

	return rec, nil
}

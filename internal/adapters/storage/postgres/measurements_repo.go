package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"health-tracking-api/internal/domain/measurements"
)

type MeasurementsRepo struct {
	db *sql.DB
}

func NewMeasurementsRepo(db *sql.DB) *MeasurementsRepo {
	return &MeasurementsRepo{db: db}
}

func (r *MeasurementsRepo) Create(ctx context.Context, rec measurements.Record) error {
	other, err := marshalOtherMeasurements(rec.OtherMeasurements)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO body_measurements (
			id, date,
			chest, waist, hips, arms, legs, other_measurements,
			notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		rec.ID,
		rec.Date,
		toNullFloat(rec.Chest),
		toNullFloat(rec.Waist),
		toNullFloat(rec.Hips),
		toNullFloat(rec.Arms),
		toNullFloat(rec.Legs),
		other,
		rec.Notes,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *MeasurementsRepo) GetByID(ctx context.Context, id string) (measurements.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return measurements.Record{}, measurements.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, date,
			chest, waist, hips, arms, legs, other_measurements,
			notes, created_at, updated_at
		FROM body_measurements
		WHERE id = $1
	`, id)

	rec, err := scanMeasurement(row)
	if err == sql.ErrNoRows {
		return measurements.Record{}, measurements.ErrNotFound
	}
	return rec, err
}

func (r *MeasurementsRepo) List(ctx context.Context, limit, skip int) ([]measurements.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, date,
			chest, waist, hips, arms, legs, other_measurements,
			notes, created_at, updated_at
		FROM body_measurements
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]measurements.Record, 0)
	for rows.Next() {
		rec, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *MeasurementsRepo) Update(ctx context.Context, rec measurements.Record) error {
	other, err := marshalOtherMeasurements(rec.OtherMeasurements)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE body_measurements
		SET
			date = $2,
			chest = $3,
			waist = $4,
			hips = $5,
			arms = $6,
			legs = $7,
			other_measurements = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $1
	`,
		rec.ID,
		rec.Date,
		toNullFloat(rec.Chest),
		toNullFloat(rec.Waist),
		toNullFloat(rec.Hips),
		toNullFloat(rec.Arms),
		toNullFloat(rec.Legs),
		other,
		rec.Notes,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return measurements.ErrNotFound
	}
	return nil
}

func (r *MeasurementsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM body_measurements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return measurements.ErrNotFound
	}
	return nil
}

func marshalOtherMeasurements(m map[string]float64) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func scanMeasurement(row rowScanner) (measurements.Record, error) {
	var rec measurements.Record
	var chest, waist, hips, arms, legs sql.NullFloat64
	var other []byte

	if err := row.Scan(
		&rec.ID,
		&rec.Date,
		&chest,
		&waist,
		&hips,
		&arms,
		&legs,
		&other,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return measurements.Record{}, err
	}

	rec.Chest = fromNullFloat(chest)
	rec.Waist = fromNullFloat(waist)
	rec.Hips = fromNullFloat(hips)
	rec.Arms = fromNullFloat(arms)
	rec.Legs = fromNullFloat(legs)

	if len(other) > 0 {
		if err := json.Unmarshal(other, &rec.OtherMeasurements); err != nil {
			return measurements.Record{}, err
		}
	}

	return rec, nil
}

package postgres

import (
	"context"
	"database/sql"
	"strings"

	"health-tracking-api/internal/domain/bodycomp"
)

type BodyCompRepo struct {
	db *sql.DB
}

func NewBodyCompRepo(db *sql.DB) *BodyCompRepo {
	return &BodyCompRepo{db: db}
}

func (r *BodyCompRepo) Create(ctx context.Context, rec bodycomp.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO body_compositions (
			id, date, weight,
			body_fat_percentage, muscle_mass, water_percentage, bone_mass, bmi,
			notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		rec.ID,
		rec.Date,
		rec.Weight,
		toNullFloat(rec.BodyFatPercentage),
		toNullFloat(rec.MuscleMass),
		toNullFloat(rec.WaterPercentage),
		toNullFloat(rec.BoneMass),
		toNullFloat(rec.BMI),
		rec.Notes,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *BodyCompRepo) GetByID(ctx context.Context, id string) (bodycomp.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return bodycomp.Record{}, bodycomp.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, date, weight,
			body_fat_percentage, muscle_mass, water_percentage, bone_mass, bmi,
			notes, created_at, updated_at
		FROM body_compositions
		WHERE id = $1
	`, id)

	rec, err := scanBodyComp(row)
	if err == sql.ErrNoRows {
		return bodycomp.Record{}, bodycomp.ErrNotFound
	}
	return rec, err
}

func (r *BodyCompRepo) List(ctx context.Context, limit, skip int) ([]bodycomp.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, date, weight,
			body_fat_percentage, muscle_mass, water_percentage, bone_mass, bmi,
			notes, created_at, updated_at
		FROM body_compositions
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bodycomp.Record, 0)
	for rows.Next() {
		rec, err := scanBodyComp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *BodyCompRepo) Update(ctx context.Context, rec bodycomp.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE body_compositions
		SET
			date = $2,
			weight = $3,
			body_fat_percentage = $4,
			muscle_mass = $5,
			water_percentage = $6,
			bone_mass = $7,
			bmi = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $1
	`,
		rec.ID,
		rec.Date,
		rec.Weight,
		toNullFloat(rec.BodyFatPercentage),
		toNullFloat(rec.MuscleMass),
		toNullFloat(rec.WaterPercentage),
		toNullFloat(rec.BoneMass),
		toNullFloat(rec.BMI),
		rec.Notes,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return bodycomp.ErrNotFound
	}
	return nil
}

func (r *BodyCompRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM body_compositions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return bodycomp.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBodyComp(row rowScanner) (bodycomp.Record, error) {
	var rec bodycomp.Record
	var fat, muscle, water, bone, bmi sql.NullFloat64

	if err := row.Scan(
		&rec.ID,
		&rec.Date,
		&rec.Weight,
		&fat,
		&muscle,
		&water,
		&bone,
		&bmi,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return bodycomp.Record{}, err
	}

	rec.BodyFatPercentage = fromNullFloat(fat)
	rec.MuscleMass = fromNullFloat(muscle)
	rec.WaterPercentage = fromNullFloat(water)
	rec.BoneMass = fromNullFloat(bone)
	rec.BMI = fromNullFloat(bmi)

	return rec, nil
}

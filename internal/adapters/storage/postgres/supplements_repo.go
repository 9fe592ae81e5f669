package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"health-tracking-api/internal/domain/schedule"
	"health-tracking-api/internal/domain/supplements"
)

type SupplementsRepo struct {
	db *sql.DB
}

func NewSupplementsRepo(db *sql.DB) *SupplementsRepo {
	return &SupplementsRepo{db: db}
}

func (r *SupplementsRepo) Create(ctx context.Context, sup supplements.Supplement) error {
	sched, err := json.Marshal(sup.Schedule)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO supplements (
			id, name, dosage, unit, schedule,
			notes, start_date, end_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		sup.ID,
		sup.Name,
		sup.Dosage,
		sup.Unit,
		sched,
		sup.Notes,
		toNullDate(sup.StartDate),
		toNullDate(sup.EndDate),
		sup.CreatedAt,
		sup.UpdatedAt,
	)
	return err
}

func (r *SupplementsRepo) GetByID(ctx context.Context, id string) (supplements.Supplement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return supplements.Supplement{}, supplements.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, dosage, unit, schedule,
			notes, start_date, end_date,
			created_at, updated_at
		FROM supplements
		WHERE id = $1
	`, id)

	sup, err := scanSupplement(row)
	if err == sql.ErrNoRows {
		return supplements.Supplement{}, supplements.ErrNotFound
	}
	return sup, err
}

func (r *SupplementsRepo) List(ctx context.Context, limit, skip int) ([]supplements.Supplement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, dosage, unit, schedule,
			notes, start_date, end_date,
			created_at, updated_at
		FROM supplements
		ORDER BY name ASC, created_at ASC
		LIMIT $1 OFFSET $2
	`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]supplements.Supplement, 0)
	for rows.Next() {
		sup, err := scanSupplement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sup)
	}
	return out, rows.Err()
}

func (r *SupplementsRepo) Update(ctx context.Context, sup supplements.Supplement) error {
	sched, err := json.Marshal(sup.Schedule)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE supplements
		SET
			name = $2,
			dosage = $3,
			unit = $4,
			schedule = $5,
			notes = $6,
			start_date = $7,
			end_date = $8,
			updated_at = $9
		WHERE id = $1
	`,
		sup.ID,
		sup.Name,
		sup.Dosage,
		sup.Unit,
		sched,
		sup.Notes,
		toNullDate(sup.StartDate),
		toNullDate(sup.EndDate),
		sup.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return supplements.ErrNotFound
	}
	return nil
}

func (r *SupplementsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM supplements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return supplements.ErrNotFound
	}
	return nil
}

func scanSupplement(row rowScanner) (supplements.Supplement, error) {
	var sup supplements.Supplement
	var sched []byte
	var start, end sql.NullTime

	if err := row.Scan(
		&sup.ID,
		&sup.Name,
		&sup.Dosage,
		&sup.Unit,
		&sched,
		&sup.Notes,
		&start,
		&end,
		&sup.CreatedAt,
		&sup.UpdatedAt,
	); err != nil {
		return supplements.Supplement{}, err
	}

	var s schedule.Schedule
	if err := json.Unmarshal(sched, &s); err != nil {
		return supplements.Supplement{}, err
	}
	sup.Schedule = s
	sup.StartDate = fromNullDate(start)
	sup.EndDate = fromNullDate(end)

	return sup, nil
}

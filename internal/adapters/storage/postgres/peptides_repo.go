package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"health-tracking-api/internal/domain/peptides"
	"health-tracking-api/internal/domain/schedule"
)

type PeptidesRepo struct {
	db *sql.DB
}

func NewPeptidesRepo(db *sql.DB) *PeptidesRepo {
	return &PeptidesRepo{db: db}
}

func (r *PeptidesRepo) Create(ctx context.Context, p peptides.Peptide) error {
	sched, err := json.Marshal(p.Schedule)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO peptides (
			id, name,
			vial_amount_mg, bac_water_ml, dose_mcg,
			injection_needle_size, calculated_iu, schedule,
			notes, start_date, end_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.Name,
		p.VialAmountMG,
		p.BACWaterML,
		p.DoseMcg,
		p.InjectionNeedleSize,
		p.CalculatedIU,
		sched,
		p.Notes,
		toNullDate(p.StartDate),
		toNullDate(p.EndDate),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PeptidesRepo) GetByID(ctx context.Context, id string) (peptides.Peptide, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return peptides.Peptide{}, peptides.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name,
			vial_amount_mg, bac_water_ml, dose_mcg,
			injection_needle_size, calculated_iu, schedule,
			notes, start_date, end_date,
			created_at, updated_at
		FROM peptides
		WHERE id = $1
	`, id)

	p, err := scanPeptide(row)
	if err == sql.ErrNoRows {
		return peptides.Peptide{}, peptides.ErrNotFound
	}
	return p, err
}

func (r *PeptidesRepo) List(ctx context.Context, limit, skip int) ([]peptides.Peptide, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name,
			vial_amount_mg, bac_water_ml, dose_mcg,
			injection_needle_size, calculated_iu, schedule,
			notes, start_date, end_date,
			created_at, updated_at
		FROM peptides
		ORDER BY name ASC, created_at ASC
		LIMIT $1 OFFSET $2
	`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]peptides.Peptide, 0)
	for rows.Next() {
		p, err := scanPeptide(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PeptidesRepo) Update(ctx context.Context, p peptides.Peptide) error {
	sched, err := json.Marshal(p.Schedule)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE peptides
		SET
			name = $2,
			vial_amount_mg = $3,
			bac_water_ml = $4,
			dose_mcg = $5,
			injection_needle_size = $6,
			calculated_iu = $7,
			schedule = $8,
			notes = $9,
			start_date = $10,
			end_date = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.VialAmountMG,
		p.BACWaterML,
		p.DoseMcg,
		p.InjectionNeedleSize,
		p.CalculatedIU,
		sched,
		p.Notes,
		toNullDate(p.StartDate),
		toNullDate(p.EndDate),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return peptides.ErrNotFound
	}
	return nil
}

func (r *PeptidesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM peptides WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return peptides.ErrNotFound
	}
	return nil
}

func scanPeptide(row rowScanner) (peptides.Peptide, error) {
	var p peptides.Peptide
	var sched []byte
	var start, end sql.NullTime

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.VialAmountMG,
		&p.BACWaterML,
		&p.DoseMcg,
		&p.InjectionNeedleSize,
		&p.CalculatedIU,
		&sched,
		&p.Notes,
		&start,
		&end,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return peptides.Peptide{}, err
	}

	var s schedule.Schedule
	if err := json.Unmarshal(sched, &s); err != nil {
		return peptides.Peptide{}, err
	}
	p.Schedule = s
	p.StartDate = fromNullDate(start)
	p.EndDate = fromNullDate(end)

	return p, nil
}

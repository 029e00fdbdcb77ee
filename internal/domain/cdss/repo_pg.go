package cdss

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type alertRepoPG struct{ pool *pgxpool.Pool }

func NewAlertRepoPG(pool *pgxpool.Pool) AlertRepository { return &alertRepoPG{pool: pool} }

const alertCols = `id, rule_id, patient_id, category, severity, title, message,
	source, reference, recommendations, data, created_at, expires_at,
	acknowledged_at, acknowledged_by, resolved_at`

func (r *alertRepoPG) scanAlert(row pgx.Row) (*Alert, error) {
	var a Alert
	err := row.Scan(&a.ID, &a.RuleID, &a.PatientID, &a.Category, &a.Severity, &a.Title, &a.Message,
		&a.Source, &a.Reference, &a.Recommendations, &a.Data, &a.CreatedAt, &a.ExpiresAt,
		&a.AcknowledgedAt, &a.AcknowledgedBy, &a.ResolvedAt)
	return &a, err
}

func (r *alertRepoPG) Create(ctx context.Context, a *Alert) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cdss_alert (id, rule_id, patient_id, category, severity, title, message,
			source, reference, recommendations, data, created_at, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		a.ID, a.RuleID, a.PatientID, a.Category, a.Severity, a.Title, a.Message,
		a.Source, a.Reference, a.Recommendations, a.Data, a.CreatedAt, a.ExpiresAt)
	return err
}

func (r *alertRepoPG) GetByID(ctx context.Context, id string) (*Alert, error) {
	return r.scanAlert(r.pool.QueryRow(ctx, `SELECT `+alertCols+` FROM cdss_alert WHERE id = $1`, id))
}

func (r *alertRepoPG) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Alert, int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+alertCols+` FROM cdss_alert
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var alerts []*Alert
	for rows.Next() {
		a, err := r.scanAlert(rows)
		if err != nil {
			return nil, 0, err
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cdss_alert WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

func (r *alertRepoPG) Acknowledge(ctx context.Context, id, by string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cdss_alert SET acknowledged_at = $2, acknowledged_by = $3
		WHERE id = $1 AND acknowledged_at IS NULL`, id, at, by)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s not found or already acknowledged", id)
	}
	return nil
}

func (r *alertRepoPG) Resolve(ctx context.Context, id string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cdss_alert SET resolved_at = $2
		WHERE id = $1 AND resolved_at IS NULL`, id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s not found or already resolved", id)
	}
	return nil
}

// Package postgres persists evaluation history when a database is
// configured.
package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"binomtest/internal/api"
)

// EvaluationRepository implements api.HistoryStore on PostgreSQL.
type EvaluationRepository struct {
	db *sqlx.DB
}

// NewEvaluationRepository creates a repository over an open connection.
func NewEvaluationRepository(db *sqlx.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Migrate creates the evaluations table if it does not exist.
func (r *EvaluationRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS evaluations (
			id UUID PRIMARY KEY,
			k BIGINT NOT NULL,
			n BIGINT NOT NULL,
			p DOUBLE PRECISION NOT NULL,
			alternative TEXT NOT NULL,
			p_value DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

// Record inserts one evaluation; replays of the same id are ignored.
func (r *EvaluationRepository) Record(ctx context.Context, e api.Evaluation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, k, n, p, alternative, p_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`,
		e.ID, int64(e.K), int64(e.N), e.P, e.Alternative, e.PValue, e.CreatedAt)
	return err
}

type evaluationRow struct {
	ID          string    `db:"id"`
	K           int64     `db:"k"`
	N           int64     `db:"n"`
	P           float64   `db:"p"`
	Alternative string    `db:"alternative"`
	PValue      float64   `db:"p_value"`
	CreatedAt   time.Time `db:"created_at"`
}

// Recent returns up to limit evaluations, newest first.
func (r *EvaluationRepository) Recent(ctx context.Context, limit int) ([]api.Evaluation, error) {
	var rows []evaluationRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, k, n, p, alternative, p_value, created_at
		FROM evaluations
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}

	out := make([]api.Evaluation, len(rows))
	for i, row := range rows {
		out[i] = api.Evaluation{
			ID:          row.ID,
			K:           uint64(row.K),
			N:           uint64(row.N),
			P:           row.P,
			Alternative: row.Alternative,
			PValue:      row.PValue,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}

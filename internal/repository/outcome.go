package repository

import (
	"context"
	"fmt"

	"space/explorer/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type OutcomeRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveOutcome(ctx context.Context, session string, outcome domain.LoadOutcome) error
}

// Execer is the subset of pgxpool.Pool the repository needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type outcomeRepository struct {
	db Execer
}

func NewOutcomeRepository(db Execer) OutcomeRepository {
	return &outcomeRepository{
		db: db,
	}
}

const createOutcomesTable = `
	CREATE TABLE IF NOT EXISTS load_outcomes (
		id          BIGSERIAL PRIMARY KEY,
		session_id  TEXT        NOT NULL,
		category    TEXT        NOT NULL,
		status      TEXT        NOT NULL,
		error       TEXT,
		duration_ms BIGINT      NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	)`

func (r *outcomeRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createOutcomesTable); err != nil {
		return fmt.Errorf("failed to create load_outcomes table: %w", err)
	}
	return nil
}

func (r *outcomeRepository) SaveOutcome(ctx context.Context, session string, outcome domain.LoadOutcome) error {
	query := `
	INSERT INTO load_outcomes (session_id, category, status, error, duration_ms, finished_at)
	VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`
	_, err := r.db.Exec(ctx, query,
		session,
		outcome.Category.String(),
		string(outcome.Status),
		outcome.Error,
		outcome.Duration.Milliseconds(),
		outcome.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save load outcome for %s: %w", outcome.Category, err)
	}

	return nil
}

type nopOutcomeRepository struct{}

// NewNopOutcomeRepository discards every outcome. Used when the database is disabled.
func NewNopOutcomeRepository() OutcomeRepository {
	return nopOutcomeRepository{}
}

func (nopOutcomeRepository) EnsureSchema(context.Context) error { return nil }

func (nopOutcomeRepository) SaveOutcome(context.Context, string, domain.LoadOutcome) error {
	return nil
}

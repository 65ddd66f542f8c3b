package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prooflab/resolute/internal/domain"
)

type RunStore struct {
	db *pgxpool.Pool
}

func NewRunStore(db *pgxpool.Pool) *RunStore {
	return &RunStore{db: db}
}

func (s *RunStore) Create(ctx context.Context, r *domain.Run) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO runs (theory_id, workspace_id, status, verdict, rounds, derived_clauses, max_rounds, duration_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		r.TheoryID, r.WorkspaceID, r.Status, r.Verdict, r.Rounds, r.Derived, r.MaxRounds, r.DurationMs,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *RunStore) GetByID(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*domain.Run, error) {
	r := &domain.Run{}
	err := s.db.QueryRow(ctx,
		`SELECT id, theory_id, workspace_id, status, verdict, rounds, derived_clauses, max_rounds, duration_ms, created_at
		 FROM runs WHERE id = $1 AND workspace_id = $2`,
		id, workspaceID,
	).Scan(&r.ID, &r.TheoryID, &r.WorkspaceID, &r.Status, &r.Verdict, &r.Rounds, &r.Derived, &r.MaxRounds, &r.DurationMs, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *RunStore) ListByTheory(ctx context.Context, theoryID uuid.UUID, workspaceID uuid.UUID) ([]domain.Run, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, theory_id, workspace_id, status, verdict, rounds, derived_clauses, max_rounds, duration_ms, created_at
		 FROM runs WHERE theory_id = $1 AND workspace_id = $2
		 ORDER BY created_at DESC`,
		theoryID, workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var r domain.Run
		if err := rows.Scan(&r.ID, &r.TheoryID, &r.WorkspaceID, &r.Status, &r.Verdict, &r.Rounds, &r.Derived, &r.MaxRounds, &r.DurationMs, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DeleteFinishedBefore removes runs created before the cutoff. Theories
// are never reaped, only their run history.
func (s *RunStore) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM runs WHERE created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prooflab/resolute/internal/domain"
)

type TheoryStore struct {
	db *pgxpool.Pool
}

func NewTheoryStore(db *pgxpool.Pool) *TheoryStore {
	return &TheoryStore{db: db}
}

func (s *TheoryStore) Create(ctx context.Context, t *domain.Theory) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO theories (workspace_id, name, source, clause_count)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.WorkspaceID, t.Name, t.Source, t.ClauseCount,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (s *TheoryStore) GetByID(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*domain.Theory, error) {
	t := &domain.Theory{}
	err := s.db.QueryRow(ctx,
		`SELECT id, workspace_id, name, source, clause_count, created_at, updated_at
		 FROM theories WHERE id = $1 AND workspace_id = $2`,
		id, workspaceID,
	).Scan(&t.ID, &t.WorkspaceID, &t.Name, &t.Source, &t.ClauseCount, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TheoryStore) List(ctx context.Context, workspaceID uuid.UUID) ([]domain.Theory, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, workspace_id, name, source, clause_count, created_at, updated_at
		 FROM theories WHERE workspace_id = $1
		 ORDER BY created_at DESC`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list theories: %w", err)
	}
	defer rows.Close()

	var theories []domain.Theory
	for rows.Next() {
		var t domain.Theory
		if err := rows.Scan(&t.ID, &t.WorkspaceID, &t.Name, &t.Source, &t.ClauseCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		theories = append(theories, t)
	}
	return theories, rows.Err()
}

func (s *TheoryStore) Delete(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM theories WHERE id = $1 AND workspace_id = $2`,
		id, workspaceID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type WorkspaceStore interface {
	Create(ctx context.Context, w *Workspace) error
	GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*Workspace, error)
}

type TheoryStore interface {
	Create(ctx context.Context, t *Theory) error
	GetByID(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*Theory, error)
	List(ctx context.Context, workspaceID uuid.UUID) ([]Theory, error)
	Delete(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) error
}

type RunStore interface {
	Create(ctx context.Context, r *Run) error
	GetByID(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*Run, error)
	ListByTheory(ctx context.Context, theoryID uuid.UUID, workspaceID uuid.UUID) ([]Run, error)
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prooflab/resolute/internal/domain"
	"github.com/prooflab/resolute/internal/store"
)

type mockTheoryStore struct {
	theories map[uuid.UUID]*domain.Theory
}

func newMockTheoryStore() *mockTheoryStore {
	return &mockTheoryStore{theories: make(map[uuid.UUID]*domain.Theory)}
}

func (m *mockTheoryStore) Create(ctx context.Context, t *domain.Theory) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	m.theories[t.ID] = t
	return nil
}

func (m *mockTheoryStore) GetByID(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*domain.Theory, error) {
	t, ok := m.theories[id]
	if !ok || t.WorkspaceID != workspaceID {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (m *mockTheoryStore) List(ctx context.Context, workspaceID uuid.UUID) ([]domain.Theory, error) {
	var out []domain.Theory
	for _, t := range m.theories {
		if t.WorkspaceID == workspaceID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTheoryStore) Delete(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) error {
	t, ok := m.theories[id]
	if !ok || t.WorkspaceID != workspaceID {
		return store.ErrNotFound
	}
	delete(m.theories, id)
	return nil
}

type mockRunStore struct {
	runs map[uuid.UUID]*domain.Run
}

func newMockRunStore() *mockRunStore {
	return &mockRunStore{runs: make(map[uuid.UUID]*domain.Run)}
}

func (m *mockRunStore) Create(ctx context.Context, r *domain.Run) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	m.runs[r.ID] = r
	return nil
}

func (m *mockRunStore) GetByID(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*domain.Run, error) {
	r, ok := m.runs[id]
	if !ok || r.WorkspaceID != workspaceID {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *mockRunStore) ListByTheory(ctx context.Context, theoryID uuid.UUID, workspaceID uuid.UUID) ([]domain.Run, error) {
	var out []domain.Run
	for _, r := range m.runs {
		if r.TheoryID == theoryID && r.WorkspaceID == workspaceID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRunStore) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, r := range m.runs {
		if r.CreatedAt.Before(cutoff) {
			delete(m.runs, id)
			deleted++
		}
	}
	return deleted, nil
}

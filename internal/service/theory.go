package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prooflab/resolute/internal/cnf"
	"github.com/prooflab/resolute/internal/domain"
	"github.com/prooflab/resolute/internal/store"
	"go.uber.org/zap"
)

var (
	ErrTheoryNameMissing   = errors.New("name is required")
	ErrTheorySourceMissing = errors.New("source is required")
	ErrTheorySourceInvalid = errors.New("invalid source")
	ErrTheoryEmpty         = errors.New("source contains no clauses")
	ErrTheoryNotFound      = errors.New("theory not found")
)

type TheoryService struct {
	theoryStore domain.TheoryStore
	logger      *zap.Logger
}

func NewTheoryService(ts domain.TheoryStore, logger *zap.Logger) *TheoryService {
	return &TheoryService{theoryStore: ts, logger: logger}
}

// Create validates and stores a theory. The CNF source is parsed here so
// that only well-formed clause sets ever reach the prover; the clause
// count recorded alongside is the deduplication-free count of parsed
// clause lines.
func (s *TheoryService) Create(ctx context.Context, t *domain.Theory) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrTheoryNameMissing
	}
	if strings.TrimSpace(t.Source) == "" {
		return ErrTheorySourceMissing
	}

	clauses, err := cnf.Parse(strings.NewReader(t.Source))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTheorySourceInvalid, err)
	}
	if len(clauses) == 0 {
		return ErrTheoryEmpty
	}
	t.ClauseCount = len(clauses)

	if err := s.theoryStore.Create(ctx, t); err != nil {
		return err
	}
	s.logger.Info("theory created",
		zap.String("theory_id", t.ID.String()),
		zap.Int("clauses", t.ClauseCount),
	)
	return nil
}

func (s *TheoryService) GetByID(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*domain.Theory, error) {
	t, err := s.theoryStore.GetByID(ctx, id, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTheoryNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TheoryService) List(ctx context.Context, workspaceID uuid.UUID) ([]domain.Theory, error) {
	return s.theoryStore.List(ctx, workspaceID)
}

func (s *TheoryService) Delete(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) error {
	err := s.theoryStore.Delete(ctx, id, workspaceID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTheoryNotFound
	}
	return err
}

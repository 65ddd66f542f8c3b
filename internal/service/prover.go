package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prooflab/resolute/internal/cnf"
	"github.com/prooflab/resolute/internal/domain"
	"github.com/prooflab/resolute/internal/logic"
	"github.com/prooflab/resolute/internal/store"
	"go.uber.org/zap"
)

var ErrRunNotFound = errors.New("run not found")

// ProverService runs resolution refutation over stored theories and
// records the outcome. The round bound guards the HTTP path against
// theories whose Herbrand expansion never saturates; the CLI runs
// unbounded by default.
type ProverService struct {
	theoryStore domain.TheoryStore
	runStore    domain.RunStore
	maxRounds   int
	logger      *zap.Logger
}

func NewProverService(ts domain.TheoryStore, rs domain.RunStore, maxRounds int, logger *zap.Logger) *ProverService {
	return &ProverService{
		theoryStore: ts,
		runStore:    rs,
		maxRounds:   maxRounds,
		logger:      logger,
	}
}

// Run loads the theory, saturates it and persists a run record. A tripped
// round bound is recorded as an inconclusive run, not an error; context
// cancellation aborts without recording.
func (s *ProverService) Run(ctx context.Context, theoryID uuid.UUID, workspaceID uuid.UUID) (*domain.Run, error) {
	theory, err := s.theoryStore.GetByID(ctx, theoryID, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTheoryNotFound
		}
		return nil, err
	}

	// The source was validated when the theory was created, so a parse
	// failure here means the stored row is corrupt.
	clauses, err := cnf.Parse(strings.NewReader(theory.Source))
	if err != nil {
		return nil, fmt.Errorf("parse stored theory %s: %w", theory.ID, err)
	}

	start := time.Now()
	result, err := logic.Saturate(ctx, clauses, logic.Options{MaxRounds: s.maxRounds})

	run := &domain.Run{
		TheoryID:    theory.ID,
		WorkspaceID: workspaceID,
		MaxRounds:   s.maxRounds,
		Rounds:      result.Rounds,
		Derived:     result.Derived,
		DurationMs:  time.Since(start).Milliseconds(),
	}
	switch {
	case err == nil:
		run.Status = domain.RunStatusFinished
		run.Verdict = string(result.Verdict)
	case errors.Is(err, logic.ErrInconclusive):
		run.Status = domain.RunStatusInconclusive
	default:
		return nil, err
	}

	if err := s.runStore.Create(ctx, run); err != nil {
		return nil, err
	}

	s.logger.Info("saturation run recorded",
		zap.String("run_id", run.ID.String()),
		zap.String("theory_id", theory.ID.String()),
		zap.String("status", string(run.Status)),
		zap.String("verdict", run.Verdict),
		zap.Int("rounds", run.Rounds),
		zap.Int("derived", run.Derived),
		zap.Int64("duration_ms", run.DurationMs),
	)
	return run, nil
}

func (s *ProverService) GetRun(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*domain.Run, error) {
	r, err := s.runStore.GetByID(ctx, id, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *ProverService) ListRuns(ctx context.Context, theoryID uuid.UUID, workspaceID uuid.UUID) ([]domain.Run, error) {
	if _, err := s.theoryStore.GetByID(ctx, theoryID, workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTheoryNotFound
		}
		return nil, err
	}
	return s.runStore.ListByTheory(ctx, theoryID, workspaceID)
}

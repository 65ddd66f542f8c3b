package service

import (
	"context"
	"sync"
	"time"

	"github.com/prooflab/resolute/internal/domain"
	"go.uber.org/zap"
)

const defaultReaperInterval = 1 * time.Hour

// ReaperService deletes old run records on a periodic schedule so the run
// table does not grow without bound.
type ReaperService struct {
	runStore  domain.RunStore
	retention time.Duration
	logger    *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewReaperService(rs domain.RunStore, retention time.Duration, logger *zap.Logger) *ReaperService {
	return &ReaperService{
		runStore:  rs,
		retention: retention,
		logger:    logger,
		interval:  defaultReaperInterval,
		stopCh:    make(chan struct{}),
	}
}

func (s *ReaperService) SetInterval(d time.Duration) {
	s.interval = d
}

// Start runs the reaper in a background goroutine.
func (s *ReaperService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("run reaper started",
			zap.Duration("interval", s.interval),
			zap.Duration("retention", s.retention),
		)

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				s.reap(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("run reaper stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the reaper.
func (s *ReaperService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func (s *ReaperService) reap(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)
	deleted, err := s.runStore.DeleteFinishedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("failed to reap old runs", zap.Error(err))
		return
	}
	if deleted > 0 {
		s.logger.Info("reaped old runs", zap.Int64("count", deleted))
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prooflab/resolute/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockRunStore mocks the RunStore interface.
type MockRunStore struct {
	mock.Mock
}

func (m *MockRunStore) Create(ctx context.Context, r *domain.Run) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRunStore) GetByID(ctx context.Context, id uuid.UUID, workspaceID uuid.UUID) (*domain.Run, error) {
	args := m.Called(ctx, id, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Run), args.Error(1)
}

func (m *MockRunStore) ListByTheory(ctx context.Context, theoryID uuid.UUID, workspaceID uuid.UUID) ([]domain.Run, error) {
	args := m.Called(ctx, theoryID, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Run), args.Error(1)
}

func (m *MockRunStore) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestReaper_DeletesPastRetention(t *testing.T) {
	rs := new(MockRunStore)
	rs.On("DeleteFinishedBefore", mock.Anything, mock.Anything).Return(int64(4), nil)

	svc := NewReaperService(rs, 24*time.Hour, zap.NewNop())
	svc.reap(context.Background())

	rs.AssertCalled(t, "DeleteFinishedBefore", mock.Anything, mock.Anything)
	cutoff := rs.Calls[0].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), cutoff, time.Minute)
}

func TestReaper_StoreErrorIsLoggedNotFatal(t *testing.T) {
	rs := new(MockRunStore)
	rs.On("DeleteFinishedBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	svc := NewReaperService(rs, 24*time.Hour, zap.NewNop())
	assert.NotPanics(t, func() { svc.reap(context.Background()) })
}

func TestReaper_StartStop(t *testing.T) {
	rs := new(MockRunStore)
	rs.On("DeleteFinishedBefore", mock.Anything, mock.Anything).Return(int64(0), nil)

	svc := NewReaperService(rs, time.Hour, zap.NewNop())
	svc.SetInterval(5 * time.Millisecond)
	svc.Start()
	time.Sleep(20 * time.Millisecond)
	svc.Stop()

	rs.AssertCalled(t, "DeleteFinishedBefore", mock.Anything, mock.Anything)
}

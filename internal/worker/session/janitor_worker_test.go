package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/worker"
	"github.com/carrier-hotel-map/internal/worker/session"
)

// MockSessionEvictor is a mock of SessionEvictor
type MockSessionEvictor struct {
	mock.Mock
}

func (m *MockSessionEvictor) EvictIdle(ctx context.Context, maxIdle time.Duration) int {
	args := m.Called(ctx, maxIdle)
	return args.Int(0)
}

func TestJanitorWorker_SweepsUntilStopped(t *testing.T) {
	evictor := &MockSessionEvictor{}
	swept := make(chan struct{}, 10)
	evictor.On("EvictIdle", mock.Anything, 30*time.Minute).
		Return(1).
		Run(func(mock.Arguments) {
			select {
			case swept <- struct{}{}:
			default:
			}
		})

	w := session.NewJanitorWorker(evictor, 30*time.Minute, 5*time.Millisecond, zap.NewNop())
	assert.Equal(t, "session-janitor", w.Name())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep")
	}

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
	assert.True(t, w.IsStopped())
}

func TestJanitorWorker_ContextCancel(t *testing.T) {
	evictor := &MockSessionEvictor{}
	w := session.NewJanitorWorker(evictor, time.Minute, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Start(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	evictor.AssertNotCalled(t, "EvictIdle", mock.Anything, mock.Anything)
}

func TestWorkerManager_StartStop(t *testing.T) {
	evictor := &MockSessionEvictor{}
	evictor.On("EvictIdle", mock.Anything, mock.Anything).Return(0).Maybe()

	m := worker.NewWorkerManager(zap.NewNop()).WithShutdownTimeout(time.Second)
	assert.Error(t, m.Start(context.Background()), "no workers registered")

	m.Register(session.NewJanitorWorker(evictor, time.Minute, 5*time.Millisecond, zap.NewNop()))
	require.NoError(t, m.Start(context.Background()))
	assert.NoError(t, m.Stop())
}

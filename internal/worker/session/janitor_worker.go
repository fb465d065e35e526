package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/worker"
)

// SessionEvictor закрывает неактивные сессии карты
type SessionEvictor interface {
	EvictIdle(ctx context.Context, maxIdle time.Duration) int
}

// JanitorWorker периодически закрывает сессии карты, неактивные дольше idleTTL.
// Оверлеи и выбор закрытой сессии исчезают вместе с ней.
type JanitorWorker struct {
	*worker.BaseWorker
	sessions SessionEvictor
	idleTTL  time.Duration
	interval time.Duration
}

// NewJanitorWorker создает новый JanitorWorker
func NewJanitorWorker(
	sessions SessionEvictor,
	idleTTL time.Duration,
	interval time.Duration,
	logger *zap.Logger,
) *JanitorWorker {
	return &JanitorWorker{
		BaseWorker: worker.NewBaseWorker("session-janitor", logger),
		sessions:   sessions,
		idleTTL:    idleTTL,
		interval:   interval,
	}
}

// Start запускает воркер
func (w *JanitorWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting session janitor",
		zap.Duration("idle_ttl", w.idleTTL),
		zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			evicted := w.sessions.EvictIdle(ctx, w.idleTTL)
			if evicted > 0 {
				logger.Debug("Sweep finished", zap.Int("evicted", evicted))
			}
		}
	}
}

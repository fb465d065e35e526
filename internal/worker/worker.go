package worker

import (
	"context"
)

// Worker - фоновая задача, управляемая WorkerManager
type Worker interface {
	// Start блокируется до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру о завершении
	Stop() error

	Name() string
}

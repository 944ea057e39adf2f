package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout - сколько Stop ждёт воркеры, если у ctx нет дедлайна
const DefaultShutdownTimeout = 30 * time.Second

// WorkerManager управляет несколькими воркерами
type WorkerManager struct {
	workers []Worker
	logger  *zap.Logger
	group   *errgroup.Group
	mu      sync.Mutex
}

// NewWorkerManager создает новый WorkerManager
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers: make([]Worker, 0),
		logger:  logger,
	}
}

// Register регистрирует воркер
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	return workers
}

// Start запускает все зарегистрированные воркеры, каждый в своей горутине.
// Упавший воркер не останавливает остальных: ошибка логируется и отдаётся из Wait.
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	g := &errgroup.Group{}
	for _, w := range workers {
		g.Go(func() error {
			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			if err := w.Start(ctx); err != nil {
				m.logger.Error("Worker failed",
					zap.String("name", w.Name()),
					zap.Error(err))
				return fmt.Errorf("worker %s: %w", w.Name(), err)
			}
			return nil
		})
	}

	m.mu.Lock()
	m.group = g
	m.mu.Unlock()

	return nil
}

// Wait блокируется до завершения всех воркеров и возвращает первую ошибку
func (m *WorkerManager) Wait() error {
	m.mu.Lock()
	g := m.group
	m.mu.Unlock()

	if g == nil {
		return nil
	}
	return g.Wait()
}

// Stop сигнализирует воркерам остановиться и ждёт их не дольше ctx.
// Без дедлайна в ctx используется DefaultShutdownTimeout.
func (m *WorkerManager) Stop(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultShutdownTimeout)
		defer cancel()
	}

	workers := m.snapshot()
	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))
	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker", zap.String("name", w.Name()), zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = m.Wait()
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-ctx.Done():
		m.logger.Warn("Workers shutdown timed out, some batches may be redelivered", zap.Error(ctx.Err()))
		return fmt.Errorf("workers shutdown: %w", ctx.Err())
	}
}

package refresh

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/worker"
)

const (
	DefaultMaxBatchSize = 20                     // максимум сообщений за раз
	emptyQueueSleep     = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep          = time.Second
)

// PageInvalidator - сброс закешированных страниц по событиям изменения данных
type PageInvalidator interface {
	InvalidatePages(ctx context.Context, events []*domain.DataUpdatedEvent) ([]string, error)
}

// CacheRefreshWorker читает stream:dashboard:data:updated и сбрасывает кеш затронутых локалей
type CacheRefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	invalidator  PageInvalidator
	consumerName string
	maxBatchSize int

	// drainPending - сначала дочитать свой pending list (после старта и после ошибки)
	drainPending bool
}

// NewCacheRefreshWorker создает новый CacheRefreshWorker
func NewCacheRefreshWorker(
	streamRepo repository.StreamRepository,
	invalidator PageInvalidator,
	consumerGroup string,
	maxBatchSize int,
	logger *zap.Logger,
) *CacheRefreshWorker {
	hostname, _ := os.Hostname()
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}

	return &CacheRefreshWorker{
		BaseWorker:   worker.NewBaseWorker("cache-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		invalidator:  invalidator,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		maxBatchSize: maxBatchSize,
		drainPending: true,
	}
}

// Start запускает воркер
func (w *CacheRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CacheRefreshWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", w.maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamDataUpdated, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return nil

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				if !w.Pause(ctx, errorSleep) {
					return nil
				}
				continue
			}

			if processed == 0 && !w.Pause(ctx, emptyQueueSleep) {
				return nil
			}
		}
	}
}

// ProcessBatch читает и обрабатывает одну пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *CacheRefreshWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	// 1. Читаем пачку: неподтверждённые сообщения раньше новых
	messages, err := w.readBatch(ctx)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	// 2. Парсим события
	events := make([]*domain.DataUpdatedEvent, 0, len(messages))
	messageIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamDataUpdated, w.ConsumerGroup(), msg.ID)
			continue
		}
		events = append(events, event)
		messageIDs = append(messageIDs, msg.ID)
	}
	if len(events) == 0 {
		return len(messages), nil
	}

	// 3. Сбрасываем кеш; без ACK сообщения останутся в pending list
	locales, err := w.invalidator.InvalidatePages(ctx, events)
	if err != nil {
		w.drainPending = true
		return 0, fmt.Errorf("invalidate pages: %w", err)
	}

	// 4. ACK обработанных
	if err := w.streamRepo.AckMessages(ctx, domain.StreamDataUpdated, w.ConsumerGroup(), messageIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("events", len(events)),
		zap.Strings("locales", locales))

	return len(messages), nil
}

func (w *CacheRefreshWorker) readBatch(ctx context.Context) ([]domain.StreamMessage, error) {
	if w.drainPending {
		messages, err := w.streamRepo.ConsumePending(ctx, domain.StreamDataUpdated, w.ConsumerGroup(), w.consumerName, w.maxBatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to read pending messages: %w", err)
		}
		if len(messages) > 0 {
			w.Logger().Info("Retrying pending messages", zap.Int("count", len(messages)))
			return messages, nil
		}
		w.drainPending = false
	}

	messages, err := w.streamRepo.ConsumeBatch(ctx, domain.StreamDataUpdated, w.ConsumerGroup(), w.consumerName, w.maxBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to consume batch: %w", err)
	}
	return messages, nil
}

func parseMessage(msg domain.StreamMessage) (*domain.DataUpdatedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.DataUpdatedEvent
	if err := sonic.UnmarshalString(msg.Data, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}

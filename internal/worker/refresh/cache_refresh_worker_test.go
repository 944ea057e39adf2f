package refresh_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/worker/refresh"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumePending(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockPageInvalidator is a mock of PageInvalidator
type MockPageInvalidator struct {
	mock.Mock
}

func (m *MockPageInvalidator) InvalidatePages(ctx context.Context, events []*domain.DataUpdatedEvent) ([]string, error) {
	args := m.Called(ctx, events)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

const group = "dashboard-cache-refreshers"

func TestCacheRefreshWorker_Name(t *testing.T) {
	w := refresh.NewCacheRefreshWorker(&MockStreamRepository{}, &MockPageInvalidator{}, group, 0, zap.NewNop())
	assert.Equal(t, "cache-refresh", w.Name())
	assert.Equal(t, group, w.ConsumerGroup())
}

func TestCacheRefreshWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		stream := &MockStreamRepository{}
		inv := &MockPageInvalidator{}
		stream.On("ConsumePending", ctx, domain.StreamDataUpdated, group, mock.Anything, 5).Return(nil, nil)
		stream.On("ConsumeBatch", ctx, domain.StreamDataUpdated, group, mock.Anything, 5).Return(nil, nil)

		w := refresh.NewCacheRefreshWorker(stream, inv, group, 5, zap.NewNop())
		n, err := w.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		inv.AssertNotCalled(t, "InvalidatePages", mock.Anything, mock.Anything)
	})

	t.Run("valid and broken messages", func(t *testing.T) {
		stream := &MockStreamRepository{}
		inv := &MockPageInvalidator{}
		stream.On("ConsumePending", ctx, domain.StreamDataUpdated, group, mock.Anything, refresh.DefaultMaxBatchSize).Return(nil, nil)
		stream.On("ConsumeBatch", ctx, domain.StreamDataUpdated, group, mock.Anything, refresh.DefaultMaxBatchSize).
			Return([]domain.StreamMessage{
				{ID: "1-0", Data: `{"locale":"nl-be","path":"data/nl/symptoms.csv"}`},
				{ID: "2-0", Data: `{not json`},
				{ID: "3-0", Data: ""},
			}, nil)
		stream.On("AckMessage", ctx, domain.StreamDataUpdated, group, "2-0").Return(nil)
		stream.On("AckMessage", ctx, domain.StreamDataUpdated, group, "3-0").Return(nil)
		inv.On("InvalidatePages", ctx, mock.MatchedBy(func(events []*domain.DataUpdatedEvent) bool {
			return len(events) == 1 && events[0].Locale == "nl-be"
		})).Return([]string{"nl-be"}, nil)
		stream.On("AckMessages", ctx, domain.StreamDataUpdated, group, []string{"1-0"}).Return(nil)

		w := refresh.NewCacheRefreshWorker(stream, inv, group, 0, zap.NewNop())
		n, err := w.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		stream.AssertExpectations(t)
		inv.AssertExpectations(t)
	})

	t.Run("invalidation failure leaves messages pending", func(t *testing.T) {
		stream := &MockStreamRepository{}
		inv := &MockPageInvalidator{}
		stream.On("ConsumePending", ctx, domain.StreamDataUpdated, group, mock.Anything, refresh.DefaultMaxBatchSize).Return(nil, nil)
		stream.On("ConsumeBatch", ctx, domain.StreamDataUpdated, group, mock.Anything, refresh.DefaultMaxBatchSize).
			Return([]domain.StreamMessage{{ID: "1-0", Data: `{}`}}, nil)
		inv.On("InvalidatePages", ctx, mock.Anything).Return(nil, stderrors.New("redis down"))

		w := refresh.NewCacheRefreshWorker(stream, inv, group, 0, zap.NewNop())
		_, err := w.ProcessBatch(ctx)
		assert.Error(t, err)
		stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCacheRefreshWorker_RetriesPendingAfterFailure(t *testing.T) {
	ctx := context.Background()
	stream := &MockStreamRepository{}
	inv := &MockPageInvalidator{}
	msg := domain.StreamMessage{ID: "7-0", Data: `{"locale":"fr-be"}`}
	size := refresh.DefaultMaxBatchSize

	// 1. новое сообщение, кеш недоступен
	stream.On("ConsumePending", ctx, domain.StreamDataUpdated, group, mock.Anything, size).Return(nil, nil).Once()
	stream.On("ConsumeBatch", ctx, domain.StreamDataUpdated, group, mock.Anything, size).
		Return([]domain.StreamMessage{msg}, nil).Once()
	inv.On("InvalidatePages", ctx, mock.Anything).Return(nil, stderrors.New("redis down")).Once()

	// 2. то же сообщение из pending list
	stream.On("ConsumePending", ctx, domain.StreamDataUpdated, group, mock.Anything, size).
		Return([]domain.StreamMessage{msg}, nil).Once()
	inv.On("InvalidatePages", ctx, mock.MatchedBy(func(events []*domain.DataUpdatedEvent) bool {
		return len(events) == 1 && events[0].Locale == "fr-be"
	})).Return([]string{"fr-be"}, nil).Once()
	stream.On("AckMessages", ctx, domain.StreamDataUpdated, group, []string{"7-0"}).Return(nil).Once()

	// 3. pending list пуст, обратно к новым сообщениям
	stream.On("ConsumePending", ctx, domain.StreamDataUpdated, group, mock.Anything, size).Return(nil, nil).Once()
	stream.On("ConsumeBatch", ctx, domain.StreamDataUpdated, group, mock.Anything, size).Return(nil, nil).Once()

	w := refresh.NewCacheRefreshWorker(stream, inv, group, 0, zap.NewNop())

	_, err := w.ProcessBatch(ctx)
	require.Error(t, err)

	n, err := w.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = w.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	stream.AssertExpectations(t)
	inv.AssertExpectations(t)
	stream.AssertNumberOfCalls(t, "ConsumeBatch", 2)
}

func TestCacheRefreshWorker_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", ctx, domain.StreamDataUpdated, group).Return(nil)
	stream.On("ConsumePending", ctx, domain.StreamDataUpdated, group, mock.Anything, refresh.DefaultMaxBatchSize).Return(nil, nil)
	stream.On("ConsumeBatch", ctx, domain.StreamDataUpdated, group, mock.Anything, refresh.DefaultMaxBatchSize).Return(nil, nil)

	w := refresh.NewCacheRefreshWorker(stream, &MockPageInvalidator{}, group, 0, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.True(t, w.IsStopped())
}

func TestCacheRefreshWorker_ConsumerGroupFailure(t *testing.T) {
	ctx := context.Background()
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", ctx, domain.StreamDataUpdated, group).Return(stderrors.New("no redis"))

	w := refresh.NewCacheRefreshWorker(stream, &MockPageInvalidator{}, group, 0, zap.NewNop())
	assert.Error(t, w.Start(ctx))
}

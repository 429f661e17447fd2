package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/jobs"
	"deliveries/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sweepTime = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

type MockFinder struct{ mock.Mock }

func (m *MockFinder) Handle(ctx context.Context, q queries.GetExpiredDeliveriesQuery) ([]delivery.Delivery, error) {
	args := m.Called(ctx, q)
	found, _ := args.Get(0).([]delivery.Delivery)
	return found, args.Error(1)
}

type MockUpdater struct{ mock.Mock }

func (m *MockUpdater) Handle(ctx context.Context, cmd commands.UpdateDeliveryCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

// syncBuffer is a log sink safe for the cron goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger(out *syncBuffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func expiring(id kernel.UUID) interface{} {
	return mock.MatchedBy(func(cmd commands.UpdateDeliveryCommand) bool {
		return cmd.DeliveryID().IsEqual(id) && cmd.RequestedState() == delivery.Expired
	})
}

func newDeliveries(t *testing.T, n int) []delivery.Delivery {
	t.Helper()
	out := make([]delivery.Delivery, 0, n)
	for range n {
		d, err := delivery.NewDelivery(kernel.NewUUID(), delivery.Created)
		require.NoError(t, err)
		out = append(out, d)
	}
	return out
}

func TestDeliveryExpirationJob_RunOnce(t *testing.T) {
	t.Run("should expire every delivery found", func(t *testing.T) {
		ctx := t.Context()
		found := newDeliveries(t, 2)
		finder, updater := new(MockFinder), new(MockUpdater)
		finder.On("Handle", ctx, mock.MatchedBy(func(q queries.GetExpiredDeliveriesQuery) bool {
			return q.Cutoff().Equal(sweepTime)
		})).Return(found, nil).Once()
		updater.On("Handle", ctx, expiring(found[0].ID())).Return(nil).Once()
		updater.On("Handle", ctx, expiring(found[1].ID())).Return(nil).Once()

		out := &syncBuffer{}
		job := jobs.NewDeliveryExpirationJob(finder, updater, clock.Fixed(sweepTime), time.Minute, newLogger(out))

		require.NoError(t, job.RunOnce(ctx))
		finder.AssertExpectations(t)
		updater.AssertExpectations(t)
		assert.Contains(t, out.String(), "Found deliveries to expire")
		assert.Contains(t, out.String(), "count=2")
	})

	t.Run("should stop at the first failing update", func(t *testing.T) {
		ctx := t.Context()
		found := newDeliveries(t, 3)
		updateErr := errors.New("store unavailable")
		finder, updater := new(MockFinder), new(MockUpdater)
		finder.On("Handle", ctx, mock.Anything).Return(found, nil).Once()
		updater.On("Handle", ctx, expiring(found[0].ID())).Return(nil).Once()
		updater.On("Handle", ctx, expiring(found[1].ID())).Return(updateErr).Once()

		job := jobs.NewDeliveryExpirationJob(finder, updater, clock.Fixed(sweepTime), time.Minute, newLogger(&syncBuffer{}))
		err := job.RunOnce(ctx)

		require.ErrorIs(t, err, updateErr)
		assert.Contains(t, err.Error(), found[1].ID().String())
		updater.AssertNotCalled(t, "Handle", mock.Anything, expiring(found[2].ID()))
	})

	t.Run("should return finder errors", func(t *testing.T) {
		ctx := t.Context()
		findErr := errors.New("scan failed")
		finder, updater := new(MockFinder), new(MockUpdater)
		finder.On("Handle", ctx, mock.Anything).Return(nil, findErr).Once()

		job := jobs.NewDeliveryExpirationJob(finder, updater, clock.Fixed(sweepTime), time.Minute, newLogger(&syncBuffer{}))

		require.ErrorIs(t, job.RunOnce(ctx), findErr)
		updater.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestDeliveryExpirationJob_Start(t *testing.T) {
	t.Run("should sweep immediately", func(t *testing.T) {
		finder, updater := new(MockFinder), new(MockUpdater)
		swept := make(chan struct{}, 1)
		finder.On("Handle", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { swept <- struct{}{} }).
			Return([]delivery.Delivery{}, nil)

		job := jobs.NewDeliveryExpirationJob(finder, updater, clock.Fixed(sweepTime), time.Hour, newLogger(&syncBuffer{}))
		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-swept:
		case <-time.After(5 * time.Second):
			t.Fatal("expected an immediate sweep")
		}
	})

	t.Run("should log a failing sweep and keep running", func(t *testing.T) {
		finder, updater := new(MockFinder), new(MockUpdater)
		finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("scan failed"))

		out := &syncBuffer{}
		job := jobs.NewDeliveryExpirationJob(finder, updater, clock.Fixed(sweepTime), time.Hour, newLogger(out))
		require.NoError(t, job.Start())
		defer job.Stop()

		require.Eventually(t, func() bool {
			return bytes.Contains([]byte(out.String()), []byte("Unable to expire deliveries"))
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("should recover a panicking sweep", func(t *testing.T) {
		finder, updater := new(MockFinder), new(MockUpdater)
		finder.On("Handle", mock.Anything, mock.Anything).Run(func(mock.Arguments) { panic("boom") })

		out := &syncBuffer{}
		job := jobs.NewDeliveryExpirationJob(finder, updater, clock.Fixed(sweepTime), time.Hour, newLogger(out))
		require.NoError(t, job.Start())
		defer job.Stop()

		require.Eventually(t, func() bool {
			return bytes.Contains([]byte(out.String()), []byte("boom"))
		}, 5*time.Second, 10*time.Millisecond)
	})
	t.Run("should refuse a second start", func(t *testing.T) {
		finder, updater := new(MockFinder), new(MockUpdater)
		var sweeps atomic.Int32
		finder.On("Handle", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { sweeps.Add(1) }).
			Return([]delivery.Delivery{}, nil)

		job := jobs.NewDeliveryExpirationJob(finder, updater, clock.Fixed(sweepTime), time.Hour, newLogger(&syncBuffer{}))
		require.NoError(t, job.Start())
		defer job.Stop()

		require.ErrorIs(t, job.Start(), jobs.ErrJobAlreadyStarted)

		require.Eventually(t, func() bool { return sweeps.Load() == 1 }, 5*time.Second, 10*time.Millisecond)
		assert.Never(t, func() bool { return sweeps.Load() > 1 }, 200*time.Millisecond, 10*time.Millisecond)
	})

	t.Run("should start again after stop", func(t *testing.T) {
		finder, updater := new(MockFinder), new(MockUpdater)
		var sweeps atomic.Int32
		finder.On("Handle", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { sweeps.Add(1) }).
			Return([]delivery.Delivery{}, nil)

		job := jobs.NewDeliveryExpirationJob(finder, updater, clock.Fixed(sweepTime), time.Hour, newLogger(&syncBuffer{}))
		require.NoError(t, job.Start())
		require.Eventually(t, func() bool { return sweeps.Load() == 1 }, 5*time.Second, 10*time.Millisecond)
		job.Stop()
		job.Stop()

		require.NoError(t, job.Start())
		defer job.Stop()

		require.Eventually(t, func() bool { return sweeps.Load() == 2 }, 5*time.Second, 10*time.Millisecond)
	})
}

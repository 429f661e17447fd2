package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// DefaultExpirationInterval is the time between two expiration sweeps.
const DefaultExpirationInterval = 30 * time.Minute

var ErrJobAlreadyStarted = errors.New("delivery expiration job is already started")

type (
	ExpiredDeliveriesFinder interface {
		Handle(ctx context.Context, q queries.GetExpiredDeliveriesQuery) ([]delivery.Delivery, error)
	}

	DeliveryUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateDeliveryCommand) error
	}
)

// DeliveryExpirationJob moves deliveries whose access window has lapsed to
// Expired. It sweeps once on Start and then every interval.
type DeliveryExpirationJob struct {
	finder   ExpiredDeliveriesFinder
	updater  DeliveryUpdater
	clock    clock.Clock
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	entryID cron.EntryID // zero while stopped
}

func NewDeliveryExpirationJob(
	finder ExpiredDeliveriesFinder,
	updater DeliveryUpdater,
	c clock.Clock,
	interval time.Duration,
	logger *slog.Logger,
) *DeliveryExpirationJob {
	if interval <= 0 {
		interval = DefaultExpirationInterval
	}
	logger = logger.With("component", "delivery_expiration_job")
	return &DeliveryExpirationJob{
		finder:   finder,
		updater:  updater,
		clock:    clock.OrSystem(c),
		interval: interval,
		cron:     cron.New(cron.WithLogger(cronLogger{logger})),
		logger:   logger,
	}
}

// Start schedules the sweep and runs the first one right away in the
// background. A failing or panicking sweep is logged and the schedule carries
// on. Starting a running job returns ErrJobAlreadyStarted.
func (j *DeliveryExpirationJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.entryID != 0 {
		return ErrJobAlreadyStarted
	}

	job := cron.NewChain(cron.Recover(cronLogger{j.logger})).Then(cron.FuncJob(j.sweep))

	j.entryID = j.cron.Schedule(cron.Every(j.interval), job)
	j.cron.Start()
	go job.Run()

	j.logger.InfoContext(context.Background(), "Delivery expiration job started", "interval", j.interval.String())
	return nil
}

// Stop cancels future sweeps. A sweep already running is not waited for.
// The job may be started again afterwards.
func (j *DeliveryExpirationJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.entryID == 0 {
		return
	}

	j.cron.Stop()
	j.cron.Remove(j.entryID)
	j.entryID = 0
	j.logger.InfoContext(context.Background(), "Delivery expiration job stopped")
}

// RunOnce performs one sweep. It stops at the first failing update; the
// remaining deliveries are picked up by the next sweep.
func (j *DeliveryExpirationJob) RunOnce(ctx context.Context) error {
	q, err := queries.NewGetExpiredDeliveriesQuery(j.clock.Now())
	if err != nil {
		return err
	}

	expired, err := j.finder.Handle(ctx, q)
	if err != nil {
		return fmt.Errorf("find expired deliveries: %w", err)
	}

	j.logger.InfoContext(ctx, "Found deliveries to expire", "count", len(expired))

	for _, d := range expired {
		j.logger.InfoContext(ctx, "Expiring delivery", "deliveryId", d.ID().String())

		cmd, err := commands.NewUpdateDeliveryCommand(d.ID(), delivery.Expired)
		if err != nil {
			return err
		}
		if err = j.updater.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("expire delivery %s: %w", d.ID(), err)
		}
	}
	return nil
}

func (j *DeliveryExpirationJob) sweep() {
	ctx := context.Background()
	if err := j.RunOnce(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Unable to expire deliveries", "error", err)
	}
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

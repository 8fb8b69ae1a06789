package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tracking"

	"github.com/robfig/cron/v3"
)

// DefaultLookback keeps a delivered order visible for one minute after delivery.
const DefaultLookback = queries.MinLookback + time.Minute

// RecentOrdersHandler is satisfied by queries.GetRecentOrdersWithStatusQueryHandler.
type RecentOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetRecentOrdersWithStatusQuery) ([]*tracking.OrderWithStatus, error)
}

// DeliveryProgressJob logs every delivery status transition of recent orders
// exactly once. Runs every second.
type DeliveryProgressJob struct {
	handler RecentOrdersHandler
	query   queries.GetRecentOrdersWithStatusQuery
	cron    *cron.Cron
	logger  *slog.Logger

	mu       sync.Mutex
	lastSeen map[kernel.UUID]order.DeliveryStatus
}

func NewDeliveryProgressJob(
	handler RecentOrdersHandler,
	lookback time.Duration,
	logger *slog.Logger,
) (*DeliveryProgressJob, error) {
	query, err := queries.NewGetRecentOrdersWithStatusQuery(lookback)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "delivery_progress_job")
	cronLog := cronLogger{logger: logger}

	return &DeliveryProgressJob{
		handler: handler,
		query:   query,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger:   logger,
		lastSeen: make(map[kernel.UUID]order.DeliveryStatus),
	}, nil
}

// Start begins the job to run every second. A tick still running when the
// next one is due makes that next one skip.
func (j *DeliveryProgressJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.Tick(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery progress job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery progress job started (running every second)")
	return nil
}

// Stop waits for a running tick to finish.
func (j *DeliveryProgressJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery progress job stopped")
}

// Tick compares the current status of every recent order with the one seen
// on the previous tick and logs the differences. Statuses only move forward:
// a result older than the recorded status is ignored. Orders that left the
// lookback window are forgotten.
func (j *DeliveryProgressJob) Tick(ctx context.Context) error {
	statuses, err := j.handler.Handle(ctx, j.query)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	current := make(map[kernel.UUID]struct{}, len(statuses))
	for _, s := range statuses {
		id := s.Order().ID()
		current[id] = struct{}{}

		prev, known := j.lastSeen[id]
		if known && s.Status() <= prev {
			continue
		}
		j.lastSeen[id] = s.Status()

		from := "none"
		if known {
			from = prev.String()
		}
		j.logger.InfoContext(ctx, "Order status changed",
			"order_id", id.String(),
			"user_id", s.Order().UserID(),
			"from", from,
			"to", s.StatusText(),
			"progress", s.Progress(),
		)
	}

	for id := range j.lastSeen {
		if _, ok := current[id]; !ok {
			delete(j.lastSeen, id)
		}
	}

	return nil
}

// Tracked returns how many orders the job currently remembers.
func (j *DeliveryProgressJob) Tracked() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.lastSeen)
}

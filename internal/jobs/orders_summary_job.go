package jobs

import (
	"context"
	"log/slog"
	"time"

	"pedidofacil/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// summaryTimeout bounds one run so a stuck database cannot pile up overlapping runs.
const summaryTimeout = 10 * time.Second

type OrdersSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersSummaryQuery) (queries.GetOrdersSummaryQueryResponse, error)
}

// StoreTotalsRecorder receives every computed summary.
type StoreTotalsRecorder interface {
	SetStoreTotals(orders, items int64, value decimal.Decimal)
}

// OrdersSummaryJob periodically computes the store-wide order summary, logs it and
// publishes it to the metrics recorder.
type OrdersSummaryJob struct {
	handler  OrdersSummaryHandler
	recorder StoreTotalsRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrdersSummaryJob creates the job. schedule is a six-field cron expression with seconds,
// for example "0 */5 * * * *".
func NewOrdersSummaryJob(
	handler OrdersSummaryHandler,
	recorder StoreTotalsRecorder,
	schedule string,
	logger *slog.Logger,
) *OrdersSummaryJob {
	return &OrdersSummaryJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "orders_summary_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
// An invalid schedule is returned as an error and nothing is started.
func (j *OrdersSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Orders summary job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orders summary job started", "schedule", j.schedule)
	return nil
}

// Run computes one summary immediately.
func (j *OrdersSummaryJob) Run(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrdersSummaryQuery())
	if err != nil {
		return err
	}

	if j.recorder != nil {
		j.recorder.SetStoreTotals(summary.TotalOrders, summary.TotalItems, summary.TotalValue)
	}

	j.logger.InfoContext(ctx, "Orders summary",
		"orders", summary.TotalOrders,
		"items", summary.TotalItems,
		"total_value", summary.TotalValue.StringFixed(2),
	)
	return nil
}

// Stop stops the scheduler and waits for a running summary to finish.
func (j *OrdersSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Orders summary job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"littlelemon/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersReportJob logs the number of pending orders and how many of
// them still wait for a delivery crew. Runs every minute.
type PendingOrdersReportJob struct {
	handler queries.CountPendingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewPendingOrdersReportJob(handler queries.CountPendingOrdersQueryHandler, logger *slog.Logger) *PendingOrdersReportJob {
	return &PendingOrdersReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_orders_report_job"),
	}
}

// Start schedules the job.
func (j *PendingOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pending orders report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders report job started (running every minute)")
	return nil
}

// Run reports once.
func (j *PendingOrdersReportJob) Run(ctx context.Context) (queries.CountPendingOrdersQueryResponse, error) {
	resp, err := j.handler.Handle(ctx, queries.NewCountPendingOrdersQuery())
	if err != nil {
		return queries.CountPendingOrdersQueryResponse{}, err
	}

	level := slog.LevelInfo
	if resp.Unassigned > 0 {
		level = slog.LevelWarn
	}
	j.logger.Log(ctx, level, "Pending orders", "pending", resp.Pending, "unassigned", resp.Unassigned)
	return resp, nil
}

// Stop stops the job.
func (j *PendingOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending orders report job stopped")
}

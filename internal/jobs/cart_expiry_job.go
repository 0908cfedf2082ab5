package jobs

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultCartLineTTL is how long an untouched cart line is kept.
const DefaultCartLineTTL = 72 * time.Hour

// CartExpiryJob removes cart lines that were added more than ttl ago.
// Runs every ten minutes.
type CartExpiryJob struct {
	handler commands.ExpireCartLinesCommandHandler
	ttl     time.Duration
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartExpiryJob creates the job. A non-positive ttl falls back to
// DefaultCartLineTTL.
func NewCartExpiryJob(handler commands.ExpireCartLinesCommandHandler, ttl time.Duration, logger *slog.Logger) *CartExpiryJob {
	if ttl <= 0 {
		ttl = DefaultCartLineTTL
	}
	return &CartExpiryJob{
		handler: handler,
		ttl:     ttl,
		now:     time.Now,
		cron:    cron.New(),
		logger:  logger.With("component", "cart_expiry_job"),
	}
}

// Start schedules the job.
func (j *CartExpiryJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Cart expiry job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart expiry job started", "ttl", j.ttl.String())
	return nil
}

// Run expires the stale lines once and returns how many were removed.
func (j *CartExpiryJob) Run(ctx context.Context) (int64, error) {
	cmd, err := commands.NewExpireCartLinesCommand(j.now().Add(-j.ttl))
	if err != nil {
		return 0, err
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired cart lines", "removed", removed)
	}
	return removed, nil
}

// Stop stops the job.
func (j *CartExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cart expiry job stopped")
}

package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cartExpiryJob    *CartExpiryJob
	pendingOrdersJob *PendingOrdersReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expireCartLinesHandler commands.ExpireCartLinesCommandHandler,
	countPendingOrdersHandler queries.CountPendingOrdersQueryHandler,
	cartLineTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cartExpiryJob:    NewCartExpiryJob(expireCartLinesHandler, cartLineTTL, logger),
		pendingOrdersJob: NewPendingOrdersReportJob(countPendingOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cartExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart expiry job: %w", err)
	}

	if err := jm.pendingOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.cartExpiryJob.Stop()
		return fmt.Errorf("failed to start pending orders report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrdersJob.Stop()
	jm.cartExpiryJob.Stop()
}

package jobs

import (
	"context"
	"log/slog"

	"freightmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuotationExpirationJob periodically expires submitted quotations whose
// validity date has passed. Runs every minute; expiration is idempotent, so
// an overlapping or delayed run is harmless.
type QuotationExpirationJob struct {
	handler commands.ExpireQuotationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuotationExpirationJob creates a new job for expiring quotations.
func NewQuotationExpirationJob(
	handler commands.ExpireQuotationsCommandHandler,
	logger *slog.Logger,
) *QuotationExpirationJob {
	return &QuotationExpirationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "quotation_expiration_job"),
	}
}

// Start begins the quotation expiration job to run every minute.
func (j *QuotationExpirationJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		cmd := commands.NewExpireQuotationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Quotation expiration job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quotation expiration job started (running every minute)")
	return nil
}

// Stop stops the quotation expiration job.
func (j *QuotationExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quotation expiration job stopped")
}

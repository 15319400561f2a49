package commands

import (
	"context"
	"time"
)

// ExpireQuotationsCommandHandler expires submitted quotations past their
// validity date. Expiration is a marketplace-driven transition; the
// forwarder takes no part in it.
type ExpireQuotationsCommandHandler struct {
	uowFactory QuotationUoWFactory
}

// NewExpireQuotationsCommandHandler creates a handler for quotation
// expiration.
func NewExpireQuotationsCommandHandler(uowFactory QuotationUoWFactory) ExpireQuotationsCommandHandler {
	return ExpireQuotationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires every submitted quotation whose validity date lies before
// now, in one transaction.
func (h ExpireQuotationsCommandHandler) Handle(ctx context.Context, cmd ExpireQuotationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quotationRepo := uow.QuotationRepository()

	stale, err := quotationRepo.GetAllSubmittedExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, q := range stale {
		if err = q.Expire(); err != nil {
			return err
		}
		if err = quotationRepo.Update(ctx, q); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

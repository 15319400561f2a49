package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/quotation"
	"freightmarket/internal/core/domain/services"
	"freightmarket/internal/pkg/errs"
)

// SubmitQuotationCommandHandler handles quotation submission. It enforces
// the forwarder's permitted actions (the inquiry must be open and not
// rejected by either side) and the subscription's monthly quotation quota,
// then creates or resumes the quotation and submits it as a binding offer.
//
// The quota check and the insert run inside one unit of work, which narrows
// but does not eliminate the check-then-act window between two concurrent
// submissions from the same organization.
type SubmitQuotationCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitQuotationCommandHandler creates a handler for quotation
// submission.
func NewSubmitQuotationCommandHandler(uowFactory UoWFactory) SubmitQuotationCommandHandler {
	return SubmitQuotationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submit command. Returns ErrQuotationNotPermitted when
// the inquiry is not open to this forwarder and ErrQuotaExceeded (with the
// quota reason) when the monthly limit is reached.
func (h SubmitQuotationCommandHandler) Handle(ctx context.Context, cmd SubmitQuotationCommand) error {
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

	inquiryRepo := uow.InquiryRepository()
	quotationRepo := uow.QuotationRepository()

	inq, err := inquiryRepo.Get(ctx, cmd.InquiryID())
	if err != nil {
		return err
	}

	response, err := inquiryRepo.GetResponse(ctx, cmd.InquiryID(), cmd.ForwarderOrgID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// The inquiry was never dispatched to this forwarder.
		return ErrQuotationNotPermitted
	}
	if err != nil {
		return err
	}

	existing, err := quotationRepo.GetByInquiryAndForwarder(ctx, cmd.InquiryID(), cmd.ForwarderOrgID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	statusCtx := services.StatusContext{
		InquiryStatus:   inq.Status(),
		QuotationStatus: quotation.Unknown,
		ResponseStatus:  response.Status(),
	}
	if existing != nil {
		statusCtx.QuotationStatus = existing.Status()
	}
	if !services.NewForwarderStatusView().CanCreateQuotation(statusCtx) {
		return ErrQuotationNotPermitted
	}

	q := existing
	if q == nil {
		quotaGuard := services.NewQuotaGuard(
			uow.SubscriptionRepository(),
			quotationRepo,
			uow.ConnectionRepository(),
		)
		decision, err := quotaGuard.CheckQuotationLimit(ctx, cmd.ForwarderOrgID())
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, decision.Reason)
		}

		q, err = quotation.NewQuotation(
			cmd.QuotationID(), cmd.InquiryID(), cmd.ForwarderOrgID(),
			cmd.Breakdown(), cmd.ValidUntil(), time.Now())
		if err != nil {
			return err
		}
	} else if err = q.UpdateBreakdown(cmd.Breakdown()); err != nil {
		return err
	}

	if err = q.Submit(); err != nil {
		return err
	}

	if response.Status() == inquiry.ResponsePending {
		if err = response.MarkQuoted(); err != nil {
			return err
		}
		if err = inquiryRepo.UpdateResponse(ctx, response); err != nil {
			return err
		}
	}

	if existing == nil {
		err = quotationRepo.Add(ctx, q)
	} else {
		err = quotationRepo.Update(ctx, q)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

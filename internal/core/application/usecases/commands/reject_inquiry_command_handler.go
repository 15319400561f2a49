package commands

import (
	"context"
	"errors"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/quotation"
	"freightmarket/internal/core/domain/services"
	"freightmarket/internal/pkg/errs"
)

// RejectInquiryCommandHandler records a forwarder's refusal to quote.
// Rejection is absorbing: the forwarder can never quote on this inquiry
// again. When the last outstanding forwarder rejects, the inquiry closes
// automatically in the same transaction.
type RejectInquiryCommandHandler struct {
	uowFactory UoWFactory
}

// NewRejectInquiryCommandHandler creates a handler for inquiry rejection.
func NewRejectInquiryCommandHandler(uowFactory UoWFactory) RejectInquiryCommandHandler {
	return RejectInquiryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command. Returns ErrRejectionNotPermitted
// when the forwarder's view of the inquiry does not allow rejecting, for
// example after a quotation was already submitted.
func (h RejectInquiryCommandHandler) Handle(ctx context.Context, cmd RejectInquiryCommand) error {
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

	inq, err := inquiryRepo.Get(ctx, cmd.InquiryID())
	if err != nil {
		return err
	}

	response, err := inquiryRepo.GetResponse(ctx, cmd.InquiryID(), cmd.ForwarderOrgID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRejectionNotPermitted
	}
	if err != nil {
		return err
	}

	statusCtx := services.StatusContext{
		InquiryStatus:   inq.Status(),
		QuotationStatus: quotation.Unknown,
		ResponseStatus:  response.Status(),
	}
	existing, err := uow.QuotationRepository().GetByInquiryAndForwarder(
		ctx, cmd.InquiryID(), cmd.ForwarderOrgID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		statusCtx.QuotationStatus = existing.Status()
	}

	if !services.NewForwarderStatusView().CanRejectInquiry(statusCtx) {
		return ErrRejectionNotPermitted
	}

	if err = response.Reject(); err != nil {
		return err
	}
	if err = inquiryRepo.UpdateResponse(ctx, response); err != nil {
		return err
	}

	// Close the inquiry once every dispatched forwarder has rejected it.
	responses, err := inquiryRepo.GetResponses(ctx, cmd.InquiryID())
	if err != nil {
		return err
	}
	if allRejected(responses) {
		if err = inq.Close(); err != nil {
			return err
		}
		if err = inquiryRepo.Update(ctx, inq); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func allRejected(responses []*inquiry.ForwarderResponse) bool {
	for _, r := range responses {
		if r.Status() != inquiry.ResponseRejected {
			return false
		}
	}
	return len(responses) > 0
}

package commands

import (
	"context"

	"freightmarket/internal/core/domain/services"
)

// CancelInquiryCommandHandler withdraws an inquiry on the shipper's behalf.
// Cancellation is permitted only while the inquiry is a draft or still open
// without any quotation against it.
type CancelInquiryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelInquiryCommandHandler creates a handler for inquiry cancellation.
func NewCancelInquiryCommandHandler(uowFactory UoWFactory) CancelInquiryCommandHandler {
	return CancelInquiryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Returns ErrNotInquiryOwner when
// the requesting organization does not own the inquiry and
// ErrCancellationNotPermitted once a quotation has arrived or the inquiry
// reached a final state.
func (h CancelInquiryCommandHandler) Handle(ctx context.Context, cmd CancelInquiryCommand) error {
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
	if !inq.ShipperOrgID().IsEqual(cmd.ShipperOrgID()) {
		return ErrNotInquiryOwner
	}

	quotations, err := uow.QuotationRepository().GetAllByInquiry(ctx, cmd.InquiryID())
	if err != nil {
		return err
	}

	statusCtx := services.ShipperStatusContext{
		InquiryStatus:  inq.Status(),
		QuotationCount: len(quotations),
	}
	if !services.NewShipperStatusView().CanCancelInquiry(statusCtx) {
		return ErrCancellationNotPermitted
	}

	if err = inq.Cancel(); err != nil {
		return err
	}
	if err = inquiryRepo.Update(ctx, inq); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

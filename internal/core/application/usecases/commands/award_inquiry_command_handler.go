package commands

import (
	"context"
	"errors"

	"freightmarket/internal/core/domain/model/quotation"
)

// ErrQuotationInquiryMismatch is returned when the awarded quotation does
// not belong to the awarded inquiry.
var ErrQuotationInquiryMismatch = errors.New("quotation does not belong to this inquiry")

// AwardInquiryCommandHandler processes the shipper's award decision. One
// transaction accepts the winning quotation, rejects every other submitted
// quotation on the inquiry, and moves the inquiry to Awarded, so at most one
// accepted quotation can ever exist per inquiry.
type AwardInquiryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAwardInquiryCommandHandler creates a handler for inquiry awards.
func NewAwardInquiryCommandHandler(uowFactory UoWFactory) AwardInquiryCommandHandler {
	return AwardInquiryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the award command. Returns ErrNotInquiryOwner when the
// requesting organization does not own the inquiry. Awarding a non-open
// inquiry or accepting a non-submitted quotation fails with the respective
// status transition error.
func (h AwardInquiryCommandHandler) Handle(ctx context.Context, cmd AwardInquiryCommand) error {
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
	if !inq.ShipperOrgID().IsEqual(cmd.ShipperOrgID()) {
		return ErrNotInquiryOwner
	}

	winner, err := quotationRepo.Get(ctx, cmd.QuotationID())
	if err != nil {
		return err
	}
	if !winner.InquiryID().IsEqual(cmd.InquiryID()) {
		return ErrQuotationInquiryMismatch
	}

	if err = winner.Accept(); err != nil {
		return err
	}
	if err = quotationRepo.Update(ctx, winner); err != nil {
		return err
	}

	quotations, err := quotationRepo.GetAllByInquiry(ctx, cmd.InquiryID())
	if err != nil {
		return err
	}
	for _, q := range quotations {
		if q.IsEqual(winner) || q.Status() != quotation.Submitted {
			continue
		}
		if err = q.Reject(); err != nil {
			return err
		}
		if err = quotationRepo.Update(ctx, q); err != nil {
			return err
		}
	}

	if err = inq.Award(); err != nil {
		return err
	}
	if err = inquiryRepo.Update(ctx, inq); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

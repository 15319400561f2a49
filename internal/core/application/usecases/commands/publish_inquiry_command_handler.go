package commands

import (
	"context"
	"time"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
)

// PublishInquiryCommandHandler opens a draft inquiry to forwarders. The
// inquiry transitions to Open and a pending forwarder response record is
// created for every forwarder organization the shipper holds a confirmed
// connection with, all in one transaction.
type PublishInquiryCommandHandler struct {
	uowFactory UoWFactory
}

// NewPublishInquiryCommandHandler creates a handler for inquiry publishing.
func NewPublishInquiryCommandHandler(uowFactory UoWFactory) PublishInquiryCommandHandler {
	return PublishInquiryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the publish command. Returns ErrNotInquiryOwner when the
// requesting organization does not own the inquiry. Publishing a non-draft
// inquiry fails with the status transition error.
func (h PublishInquiryCommandHandler) Handle(ctx context.Context, cmd PublishInquiryCommand) error {
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

	if err = inq.Open(); err != nil {
		return err
	}

	forwarders, err := uow.ConnectionRepository().GetConnectedForwarders(ctx, cmd.ShipperOrgID())
	if err != nil {
		return err
	}

	sentAt := time.Now()
	for _, forwarderOrgID := range forwarders {
		response, err := inquiry.NewForwarderResponse(
			kernel.NewUUID(), inq.ID(), forwarderOrgID, sentAt)
		if err != nil {
			return err
		}
		if err = inquiryRepo.AddResponse(ctx, response); err != nil {
			return err
		}
	}

	if err = inquiryRepo.Update(ctx, inq); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"freightmarket/internal/core/domain/model/inquiry"
)

// CreateInquiryCommandHandler handles the business logic for inquiry
// creation. New inquiries start as drafts owned by the shipper organization
// and become visible to forwarders only after publishing.
type CreateInquiryCommandHandler struct {
	uowFactory InquiryUoWFactory
}

// NewCreateInquiryCommandHandler creates a handler for inquiry creation.
func NewCreateInquiryCommandHandler(uowFactory InquiryUoWFactory) CreateInquiryCommandHandler {
	return CreateInquiryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inquiry creation command. The draft inquiry and its
// packages are persisted in one transaction.
func (h CreateInquiryCommandHandler) Handle(ctx context.Context, cmd CreateInquiryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	inq, err := inquiry.NewInquiry(cmd.InquiryID(), cmd.ShipperOrgID(), cmd.ServiceType(), cmd.Packages())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InquiryRepository().Add(ctx, inq); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

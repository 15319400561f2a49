package commands

import (
	"errors"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/guard"
)

var ErrAwardInquiryCommandIsNotConstructed = errors.New(
	"AwardInquiryCommand must be created via NewAwardInquiryCommand constructor",
)

// AwardInquiryCommand represents a shipper's decision to accept one
// quotation on an open inquiry.
type AwardInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID    kernel.UUID
	shipperOrgID kernel.UUID
	quotationID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAwardInquiryCommand creates a command to award an inquiry to the given
// quotation.
func NewAwardInquiryCommand(inquiryID, shipperOrgID, quotationID kernel.UUID) (AwardInquiryCommand, error) {
	cmd := AwardInquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInquiryID(inquiryID),
		cmd.setShipperOrgID(shipperOrgID),
		cmd.setQuotationID(quotationID),
	); err != nil {
		return AwardInquiryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AwardInquiryCommand) Validate() error {
	return c.guard.Validate(ErrAwardInquiryCommandIsNotConstructed)
}

// InquiryID returns the identifier of the inquiry to award.
func (c AwardInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// ShipperOrgID returns the requesting shipper organization's identifier.
func (c AwardInquiryCommand) ShipperOrgID() kernel.UUID {
	return c.shipperOrgID
}

// QuotationID returns the identifier of the winning quotation.
func (c AwardInquiryCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

func (c *AwardInquiryCommand) setInquiryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.inquiryID = id
	return nil
}

func (c *AwardInquiryCommand) setShipperOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipperOrgID = id
	return nil
}

func (c *AwardInquiryCommand) setQuotationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.quotationID = id
	return nil
}

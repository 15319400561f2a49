package commands

import (
	"errors"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/guard"
)

var ErrCancelInquiryCommandIsNotConstructed = errors.New(
	"CancelInquiryCommand must be created via NewCancelInquiryCommand constructor",
)

// CancelInquiryCommand represents a shipper's request to withdraw an
// inquiry before any quotation arrived.
type CancelInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID    kernel.UUID
	shipperOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelInquiryCommand creates a command to cancel an inquiry.
func NewCancelInquiryCommand(inquiryID, shipperOrgID kernel.UUID) (CancelInquiryCommand, error) {
	cmd := CancelInquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInquiryID(inquiryID),
		cmd.setShipperOrgID(shipperOrgID),
	); err != nil {
		return CancelInquiryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelInquiryCommand) Validate() error {
	return c.guard.Validate(ErrCancelInquiryCommandIsNotConstructed)
}

// InquiryID returns the identifier of the inquiry to cancel.
func (c CancelInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// ShipperOrgID returns the requesting shipper organization's identifier.
func (c CancelInquiryCommand) ShipperOrgID() kernel.UUID {
	return c.shipperOrgID
}

func (c *CancelInquiryCommand) setInquiryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.inquiryID = id
	return nil
}

func (c *CancelInquiryCommand) setShipperOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipperOrgID = id
	return nil
}

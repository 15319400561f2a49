package commands

import (
	"errors"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/guard"
)

var ErrPublishInquiryCommandIsNotConstructed = errors.New(
	"PublishInquiryCommand must be created via NewPublishInquiryCommand constructor",
)

// PublishInquiryCommand represents a shipper's request to open a draft
// inquiry to its connected forwarders.
type PublishInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID    kernel.UUID
	shipperOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPublishInquiryCommand creates a command to publish an inquiry.
func NewPublishInquiryCommand(inquiryID, shipperOrgID kernel.UUID) (PublishInquiryCommand, error) {
	cmd := PublishInquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInquiryID(inquiryID),
		cmd.setShipperOrgID(shipperOrgID),
	); err != nil {
		return PublishInquiryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishInquiryCommand) Validate() error {
	return c.guard.Validate(ErrPublishInquiryCommandIsNotConstructed)
}

// InquiryID returns the identifier of the inquiry to publish.
func (c PublishInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// ShipperOrgID returns the requesting shipper organization's identifier.
func (c PublishInquiryCommand) ShipperOrgID() kernel.UUID {
	return c.shipperOrgID
}

func (c *PublishInquiryCommand) setInquiryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.inquiryID = id
	return nil
}

func (c *PublishInquiryCommand) setShipperOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipperOrgID = id
	return nil
}

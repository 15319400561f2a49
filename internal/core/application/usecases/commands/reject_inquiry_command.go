package commands

import (
	"errors"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/guard"
)

var ErrRejectInquiryCommandIsNotConstructed = errors.New(
	"RejectInquiryCommand must be created via NewRejectInquiryCommand constructor",
)

// RejectInquiryCommand represents a forwarder's refusal to quote on a
// dispatched inquiry.
type RejectInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID      kernel.UUID
	forwarderOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectInquiryCommand creates a command to reject an inquiry.
func NewRejectInquiryCommand(inquiryID, forwarderOrgID kernel.UUID) (RejectInquiryCommand, error) {
	cmd := RejectInquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInquiryID(inquiryID),
		cmd.setForwarderOrgID(forwarderOrgID),
	); err != nil {
		return RejectInquiryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectInquiryCommand) Validate() error {
	return c.guard.Validate(ErrRejectInquiryCommandIsNotConstructed)
}

// InquiryID returns the identifier of the inquiry to reject.
func (c RejectInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// ForwarderOrgID returns the rejecting forwarder organization's identifier.
func (c RejectInquiryCommand) ForwarderOrgID() kernel.UUID {
	return c.forwarderOrgID
}

func (c *RejectInquiryCommand) setInquiryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.inquiryID = id
	return nil
}

func (c *RejectInquiryCommand) setForwarderOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.forwarderOrgID = id
	return nil
}

package commands

import (
	"errors"
	"time"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/quotation"
	"freightmarket/internal/pkg/errs"
	"freightmarket/internal/pkg/guard"
)

var ErrSubmitQuotationCommandIsNotConstructed = errors.New(
	"SubmitQuotationCommand must be created via NewSubmitQuotationCommand constructor",
)

// SubmitQuotationCommand represents a forwarder's priced offer against an
// open inquiry. Submitting creates the quotation (or resumes an existing
// draft) and immediately turns it into a binding offer.
type SubmitQuotationCommand struct { //nolint:recvcheck //using for validation
	quotationID    kernel.UUID
	inquiryID      kernel.UUID
	forwarderOrgID kernel.UUID
	breakdown      quotation.CostBreakdown
	validUntil     time.Time

	guard guard.ConstructorGuard
}

// NewSubmitQuotationCommand creates a command to submit a quotation.
// The cost breakdown must be constructed and the validity date set.
func NewSubmitQuotationCommand(
	quotationID kernel.UUID,
	inquiryID kernel.UUID,
	forwarderOrgID kernel.UUID,
	breakdown quotation.CostBreakdown,
	validUntil time.Time,
) (SubmitQuotationCommand, error) {
	cmd := SubmitQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuotationID(quotationID),
		cmd.setInquiryID(inquiryID),
		cmd.setForwarderOrgID(forwarderOrgID),
		cmd.setBreakdown(breakdown),
		cmd.setValidUntil(validUntil),
	); err != nil {
		return SubmitQuotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitQuotationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitQuotationCommandIsNotConstructed)
}

// QuotationID returns the identifier for a newly created quotation.
// Ignored when the forwarder resumes an existing draft.
func (c SubmitQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

// InquiryID returns the identifier of the quoted inquiry.
func (c SubmitQuotationCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// ForwarderOrgID returns the quoting forwarder organization's identifier.
func (c SubmitQuotationCommand) ForwarderOrgID() kernel.UUID {
	return c.forwarderOrgID
}

// Breakdown returns the cost breakdown of the offer.
func (c SubmitQuotationCommand) Breakdown() quotation.CostBreakdown {
	return c.breakdown
}

// ValidUntil returns the date the offer stays valid.
func (c SubmitQuotationCommand) ValidUntil() time.Time {
	return c.validUntil
}

func (c *SubmitQuotationCommand) setQuotationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.quotationID = id
	return nil
}

func (c *SubmitQuotationCommand) setInquiryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.inquiryID = id
	return nil
}

func (c *SubmitQuotationCommand) setForwarderOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.forwarderOrgID = id
	return nil
}

func (c *SubmitQuotationCommand) setBreakdown(breakdown quotation.CostBreakdown) error {
	if err := breakdown.Validate(); err != nil {
		return err
	}

	c.breakdown = breakdown
	return nil
}

func (c *SubmitQuotationCommand) setValidUntil(validUntil time.Time) error {
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validUntil")
	}

	c.validUntil = validUntil
	return nil
}

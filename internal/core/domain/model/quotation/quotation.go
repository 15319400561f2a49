package quotation

import (
	"errors"
	"time"

	"freightmarket/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrQuotationIsNotConstructed is returned when a Quotation was not created
// through NewQuotation or RestoreQuotation.
var ErrQuotationIsNotConstructed = errors.New("Quotation must be created via NewQuotation constructor")

// Quotation is a forwarder's priced offer against an inquiry. The forwarder
// creates and submits it; the accept/reject transitions are driven by the
// shipper's award decision, which this aggregate consumes as a fact.
//
// An inquiry holds at most one quotation per forwarder organization, and at
// most one accepted quotation overall (the award flow accepts one and rejects
// every other submitted one in the same transaction).
type Quotation struct {
	id             kernel.UUID
	inquiryID      kernel.UUID
	forwarderOrgID kernel.UUID
	status         Status
	breakdown      CostBreakdown
	validUntil     time.Time
	createdAt      time.Time
	isConstructed  bool
}

// NewQuotation creates a draft quotation for the given inquiry and forwarder
// organization.
func NewQuotation(
	id kernel.UUID,
	inquiryID kernel.UUID,
	forwarderOrgID kernel.UUID,
	breakdown CostBreakdown,
	validUntil time.Time,
	createdAt time.Time,
) (*Quotation, error) {
	if err := errors.Join(
		id.Validate(),
		inquiryID.Validate(),
		forwarderOrgID.Validate(),
		breakdown.Validate(),
	); err != nil {
		return nil, err
	}

	return &Quotation{
		id:             id,
		inquiryID:      inquiryID,
		forwarderOrgID: forwarderOrgID,
		status:         Draft,
		breakdown:      breakdown,
		validUntil:     validUntil,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// RestoreQuotation reconstructs a quotation from persistence with an explicit
// status. Used only by repository adapters.
func RestoreQuotation(
	id kernel.UUID,
	inquiryID kernel.UUID,
	forwarderOrgID kernel.UUID,
	status Status,
	breakdown CostBreakdown,
	validUntil time.Time,
	createdAt time.Time,
) (*Quotation, error) {
	q, err := NewQuotation(id, inquiryID, forwarderOrgID, breakdown, validUntil, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	q.status = status
	return q, nil
}

// Validate ensures the Quotation was created through a constructor.
func (q *Quotation) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuotationIsNotConstructed
	}
	return nil
}

// IsEqual compares two quotations by identifier.
func (q *Quotation) IsEqual(other *Quotation) bool {
	return other != nil && q.id.IsEqual(other.id)
}

// ID returns the quotation's unique identifier.
func (q *Quotation) ID() kernel.UUID {
	return q.id
}

// InquiryID returns the identifier of the quoted inquiry.
func (q *Quotation) InquiryID() kernel.UUID {
	return q.inquiryID
}

// ForwarderOrgID returns the quoting forwarder organization's identifier.
func (q *Quotation) ForwarderOrgID() kernel.UUID {
	return q.forwarderOrgID
}

// Status returns the current lifecycle status.
func (q *Quotation) Status() Status {
	return q.status
}

// Breakdown returns the cost breakdown.
func (q *Quotation) Breakdown() CostBreakdown {
	return q.breakdown
}

// TotalPrice returns the total price: the rounded sum of the breakdown.
func (q *Quotation) TotalPrice() decimal.Decimal {
	return q.breakdown.Total()
}

// Currency returns the quoting currency.
func (q *Quotation) Currency() string {
	return q.breakdown.Currency()
}

// ValidUntil returns the date the offer stays valid.
func (q *Quotation) ValidUntil() time.Time {
	return q.validUntil
}

// CreatedAt returns the creation timestamp, the basis for monthly quota
// counting.
func (q *Quotation) CreatedAt() time.Time {
	return q.createdAt
}

// UpdateBreakdown replaces the cost breakdown while the quotation is still a
// draft.
func (q *Quotation) UpdateBreakdown(breakdown CostBreakdown) error {
	if err := breakdown.Validate(); err != nil {
		return err
	}
	if _, err := q.status.Submit(); err != nil {
		// Submit is valid exactly when the quotation is editable.
		return err
	}
	q.breakdown = breakdown
	return nil
}

// Submit turns the draft into a binding offer.
func (q *Quotation) Submit() error {
	return q.transition(Status.Submit)
}

// Accept records the shipper's award of this quotation.
func (q *Quotation) Accept() error {
	return q.transition(Status.Accept)
}

// Reject records that the shipper awarded the inquiry elsewhere.
func (q *Quotation) Reject() error {
	return q.transition(Status.Reject)
}

// Withdraw retracts the quotation before the shipper has decided.
func (q *Quotation) Withdraw() error {
	return q.transition(Status.Withdraw)
}

// Expire marks a submitted quotation whose validity date has passed.
func (q *Quotation) Expire() error {
	return q.transition(Status.Expire)
}

func (q *Quotation) transition(apply func(Status) (Status, error)) error {
	newStatus, err := apply(q.status)
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

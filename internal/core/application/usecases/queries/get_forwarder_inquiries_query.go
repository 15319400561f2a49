// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models tailored to one consumer: the status views are
// applied here, so the HTTP adapter renders what it receives without
// re-deriving any workflow rules.
package queries

import (
	"errors"
	"time"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/guard"
)

var ErrGetForwarderInquiriesQueryIsNotConstructed = errors.New(
	"GetForwarderInquiriesQuery must be created via NewGetForwarderInquiriesQuery constructor",
)

// GetForwarderInquiriesQuery retrieves the inquiries dispatched to one
// forwarder organization, each with the forwarder's derived display status
// and permitted actions.
type GetForwarderInquiriesQuery struct {
	forwarderOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetForwarderInquiriesQuery creates a query for a forwarder's inquiry
// list.
func NewGetForwarderInquiriesQuery(forwarderOrgID kernel.UUID) (GetForwarderInquiriesQuery, error) {
	if err := forwarderOrgID.Validate(); err != nil {
		return GetForwarderInquiriesQuery{}, err
	}

	return GetForwarderInquiriesQuery{
		forwarderOrgID: forwarderOrgID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetForwarderInquiriesQuery) Validate() error {
	return q.guard.Validate(ErrGetForwarderInquiriesQueryIsNotConstructed)
}

// ForwarderOrgID returns the forwarder organization whose inquiries are
// requested.
func (q GetForwarderInquiriesQuery) ForwarderOrgID() kernel.UUID {
	return q.forwarderOrgID
}

// GetForwarderInquiriesQueryResponse is one row of the forwarder's inquiry
// list. DisplayStatus and the action fields are derived by the forwarder
// status view, not read from storage.
type GetForwarderInquiriesQueryResponse struct {
	InquiryID          kernel.UUID
	ServiceType        string
	DisplayStatus      string
	QuotationAction    string
	CanCreateQuotation bool
	CanRejectInquiry   bool
	SentAt             time.Time
	ViewedAt           *time.Time
}

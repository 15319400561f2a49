package queries

import (
	"errors"
	"time"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/guard"
)

var ErrGetShipperInquiriesQueryIsNotConstructed = errors.New(
	"GetShipperInquiriesQuery must be created via NewGetShipperInquiriesQuery constructor",
)

// GetShipperInquiriesQuery retrieves the inquiries owned by one shipper
// organization, each with the shipper's derived display status, the
// quotation count, and the aggregated forwarder response counts.
type GetShipperInquiriesQuery struct {
	shipperOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipperInquiriesQuery creates a query for a shipper's inquiry list.
func NewGetShipperInquiriesQuery(shipperOrgID kernel.UUID) (GetShipperInquiriesQuery, error) {
	if err := shipperOrgID.Validate(); err != nil {
		return GetShipperInquiriesQuery{}, err
	}

	return GetShipperInquiriesQuery{
		shipperOrgID: shipperOrgID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipperInquiriesQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperInquiriesQueryIsNotConstructed)
}

// ShipperOrgID returns the shipper organization whose inquiries are
// requested.
func (q GetShipperInquiriesQuery) ShipperOrgID() kernel.UUID {
	return q.shipperOrgID
}

// GetShipperInquiriesQueryResponse is one row of the shipper's inquiry list.
// DisplayStatus and CanCancelInquiry are derived by the shipper status view
// from the persisted inquiry status and the aggregated counts.
type GetShipperInquiriesQueryResponse struct {
	InquiryID        kernel.UUID
	ServiceType      string
	DisplayStatus    string
	QuotationCount   int
	ForwardersTotal  int
	ResponsesPending int
	CanCancelInquiry bool
	IsFinal          bool
	CreatedAt        time.Time
}

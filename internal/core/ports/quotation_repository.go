package ports

import (
	"context"
	"time"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/quotation"
)

// QuotationRepository defines the persistence contract for quotation
// aggregates.
type QuotationRepository interface {
	// Add persists a new quotation aggregate.
	Add(ctx context.Context, aggregate *quotation.Quotation) error

	// Update persists changes to an existing quotation aggregate.
	Update(ctx context.Context, aggregate *quotation.Quotation) error

	// Get retrieves a quotation by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quotation.Quotation, error)

	// GetByInquiryAndForwarder retrieves the single quotation one forwarder
	// organization holds against one inquiry. Returns an object-not-found
	// error when the forwarder has not quoted.
	GetByInquiryAndForwarder(ctx context.Context, inquiryID, forwarderOrgID kernel.UUID) (*quotation.Quotation, error)

	// GetAllByInquiry retrieves every quotation against one inquiry.
	// Used by the award flow to reject the quotations that lost.
	GetAllByInquiry(ctx context.Context, inquiryID kernel.UUID) ([]*quotation.Quotation, error)

	// GetAllSubmittedExpired retrieves submitted quotations whose validity
	// date lies before the given moment. Used by the expiration job.
	GetAllSubmittedExpired(ctx context.Context, now time.Time) ([]*quotation.Quotation, error)

	// CountByForwarderSince counts the quotations a forwarder organization
	// created at or after the given moment, regardless of status. Feeds the
	// monthly quota check.
	CountByForwarderSince(ctx context.Context, forwarderOrgID kernel.UUID, since time.Time) (int64, error)
}

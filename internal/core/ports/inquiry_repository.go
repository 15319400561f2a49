// Package ports defines the persistence contracts of the marketplace domain.
// These interfaces separate the domain layer from infrastructure, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
)

// InquiryRepository defines the persistence contract for inquiry aggregates
// and the forwarder response records attached to them.
type InquiryRepository interface {
	// Add persists a new inquiry aggregate with its packages.
	Add(ctx context.Context, aggregate *inquiry.Inquiry) error

	// Update persists changes to an existing inquiry aggregate.
	Update(ctx context.Context, aggregate *inquiry.Inquiry) error

	// Get retrieves an inquiry by its unique identifier, packages included.
	// Returns an object-not-found error when no such inquiry exists.
	Get(ctx context.Context, id kernel.UUID) (*inquiry.Inquiry, error)

	// GetAllOpen retrieves every inquiry currently accepting quotations.
	// Used by the expiration job to find inquiries past their deadline.
	GetAllOpen(ctx context.Context) ([]*inquiry.Inquiry, error)

	// AddResponse persists a new forwarder response record. Responses are
	// created in bulk when an inquiry is published.
	AddResponse(ctx context.Context, response *inquiry.ForwarderResponse) error

	// UpdateResponse persists changes to a forwarder response record.
	UpdateResponse(ctx context.Context, response *inquiry.ForwarderResponse) error

	// GetResponse retrieves the response of one forwarder organization to one
	// inquiry. Returns an object-not-found error when the inquiry was never
	// dispatched to that forwarder.
	GetResponse(ctx context.Context, inquiryID, forwarderOrgID kernel.UUID) (*inquiry.ForwarderResponse, error)

	// GetResponses retrieves all response records of one inquiry.
	GetResponses(ctx context.Context, inquiryID kernel.UUID) ([]*inquiry.ForwarderResponse, error)
}

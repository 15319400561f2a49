package ports

import (
	"context"

	"freightmarket/internal/core/domain/model/connection"
	"freightmarket/internal/core/domain/model/kernel"
)

// ConnectionRepository defines the persistence contract for connection
// aggregates.
type ConnectionRepository interface {
	// Add persists a new connection aggregate.
	Add(ctx context.Context, aggregate *connection.Connection) error

	// Update persists changes to an existing connection aggregate.
	Update(ctx context.Context, aggregate *connection.Connection) error

	// Get retrieves a connection by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*connection.Connection, error)

	// GetConnectedForwarders retrieves the forwarder organization identifiers
	// a shipper organization holds a confirmed connection with. Publishing an
	// inquiry dispatches it to exactly these forwarders.
	GetConnectedForwarders(ctx context.Context, shipperOrgID kernel.UUID) ([]kernel.UUID, error)

	// CountActiveByOrganization counts the pending and connected connections
	// an organization holds in the given role. excludeID removes one
	// connection from the count when re-validating an edit of that
	// connection; pass nil otherwise. Feeds the connection quota check.
	CountActiveByOrganization(ctx context.Context, organizationID kernel.UUID, role connection.Role, excludeID *kernel.UUID) (int64, error)
}

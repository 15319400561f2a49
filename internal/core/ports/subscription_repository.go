package ports

import (
	"context"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/subscription"
)

// SubscriptionRepository defines the persistence contract for subscription
// aggregates. Every organization has exactly one subscription row.
type SubscriptionRepository interface {
	// GetOrCreate retrieves the organization's subscription, creating the
	// default basic one when no row exists yet. Concurrent first reads for
	// the same organization must converge on a single row.
	GetOrCreate(ctx context.Context, organizationID kernel.UUID) (*subscription.Subscription, error)

	// Update persists changes to an existing subscription aggregate.
	Update(ctx context.Context, aggregate *subscription.Subscription) error
}

// Package subscriptionrepo provides data transfer objects and mapping
// functions for subscription persistence. Every organization has at most one
// row; the unique index on the organization column is what makes the lazy
// default provisioning race-safe.
package subscriptionrepo

import (
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/subscription"

	"github.com/google/uuid"
)

// SubscriptionDTO represents the database structure for persisting
// subscription aggregates. A NULL quotation limit means unlimited.
type SubscriptionDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Tier                  string
	Status                string
	MaxQuotationsPerMonth *int64
}

// TableName specifies the database table name for subscription entities.
func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

// fromDomain converts a subscription domain aggregate to its database
// representation.
func fromDomain(aggregate *subscription.Subscription) SubscriptionDTO {
	dto := SubscriptionDTO{
		ID:             aggregate.ID().Bytes(),
		OrganizationID: aggregate.OrganizationID().Bytes(),
		Tier:           aggregate.Tier().String(),
		Status:         aggregate.Status().String(),
	}
	if limit, ok := aggregate.MaxQuotationsPerMonth(); ok {
		dto.MaxQuotationsPerMonth = &limit
	}
	return dto
}

// toDomain converts a database DTO to a subscription domain aggregate.
func toDomain(dto SubscriptionDTO) (*subscription.Subscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	return subscription.NewSubscription(
		id,
		organizationID,
		subscription.TierFromString(dto.Tier),
		subscription.SubscriptionStatusFromString(dto.Status),
		dto.MaxQuotationsPerMonth,
	)
}

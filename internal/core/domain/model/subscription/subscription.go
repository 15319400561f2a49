package subscription

import (
	"errors"
	"fmt"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"
)

// ErrSubscriptionIsNotConstructed is returned when a Subscription was not
// created through NewSubscription or NewDefaultSubscription.
var ErrSubscriptionIsNotConstructed = errors.New(
	"Subscription must be created via NewSubscription constructor",
)

// defaultBasicQuotationLimit is the monthly quotation allowance of a
// lazily created basic subscription.
const defaultBasicQuotationLimit int64 = 5

// Tier is an organization's subscription level. The tier gates resource
// quotas: only Basic organizations are limited in how many quotations they
// may create per month and how many connections they may hold.
type Tier int

const (
	// TierUnknown represents an unrecognized persisted tier value.
	TierUnknown Tier = iota

	Basic
	Medium
	Advanced
)

func getTierStrings() map[Tier]string {
	//nolint:exhaustive // TierUnknown has no persisted form
	return map[Tier]string{
		Basic:    "basic",
		Medium:   "medium",
		Advanced: "advanced",
	}
}

// TierFromString resolves a raw persisted tier string. Tolerant: an
// unrecognized string resolves to Basic, the most restrictive tier, so a
// malformed row can never widen an organization's quota.
func TierFromString(s string) Tier {
	for tier, str := range getTierStrings() {
		if str == s {
			return tier
		}
	}
	return Basic
}

// Validate checks that the Tier has a persisted form.
func (t Tier) Validate() error {
	if _, ok := getTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tier is invalid",
			fmt.Errorf("%d is not a valid subscription tier", t))
	}
	return nil
}

// String returns the persisted wire form ("basic", "medium", "advanced").
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// SubscriptionStatus is the billing state of a subscription.
type SubscriptionStatus int

const (
	SubscriptionStatusUnknown SubscriptionStatus = iota
	Active
	Cancelled
)

func getSubscriptionStatusStrings() map[SubscriptionStatus]string {
	//nolint:exhaustive // SubscriptionStatusUnknown has no persisted form
	return map[SubscriptionStatus]string{
		Active:    "active",
		Cancelled: "cancelled",
	}
}

// SubscriptionStatusFromString resolves a raw persisted status string.
// Tolerant: unrecognized input resolves to Active.
func SubscriptionStatusFromString(s string) SubscriptionStatus {
	for status, str := range getSubscriptionStatusStrings() {
		if str == s {
			return status
		}
	}
	return Active
}

// Validate checks that the SubscriptionStatus has a persisted form.
func (s SubscriptionStatus) Validate() error {
	if _, ok := getSubscriptionStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("subscriptionStatus is invalid",
			fmt.Errorf("%d is not a valid subscription status", s))
	}
	return nil
}

// String returns the persisted wire form ("active", "cancelled").
func (s SubscriptionStatus) String() string {
	if str, ok := getSubscriptionStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Subscription is an organization's billing tier record. Every organization
// has exactly one; organizations without a row get a default basic
// subscription lazily created on first read (the quota guard's only write).
type Subscription struct {
	id                    kernel.UUID
	organizationID        kernel.UUID
	tier                  Tier
	status                SubscriptionStatus
	maxQuotationsPerMonth *int64
	isConstructed         bool
}

// NewSubscription creates a subscription with an explicit tier, status, and
// monthly quotation limit. A nil limit means unlimited.
func NewSubscription(
	id kernel.UUID,
	organizationID kernel.UUID,
	tier Tier,
	status SubscriptionStatus,
	maxQuotationsPerMonth *int64,
) (*Subscription, error) {
	if err := errors.Join(
		id.Validate(),
		organizationID.Validate(),
		tier.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if maxQuotationsPerMonth != nil && *maxQuotationsPerMonth < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxQuotationsPerMonth",
			fmt.Errorf("%d is negative", *maxQuotationsPerMonth))
	}

	sub := &Subscription{
		id:             id,
		organizationID: organizationID,
		tier:           tier,
		status:         status,
		isConstructed:  true,
	}
	if maxQuotationsPerMonth != nil {
		limit := *maxQuotationsPerMonth
		sub.maxQuotationsPerMonth = &limit
	}
	return sub, nil
}

// NewDefaultSubscription creates the lazily provisioned subscription for an
// organization seen for the first time: active basic with a monthly limit
// of five quotations.
func NewDefaultSubscription(organizationID kernel.UUID) (*Subscription, error) {
	limit := defaultBasicQuotationLimit
	return NewSubscription(kernel.NewUUID(), organizationID, Basic, Active, &limit)
}

// Validate ensures the Subscription was created through a constructor.
func (s *Subscription) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}
	return nil
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() kernel.UUID {
	return s.id
}

// OrganizationID returns the owning organization's identifier.
func (s *Subscription) OrganizationID() kernel.UUID {
	return s.organizationID
}

// Tier returns the subscription tier.
func (s *Subscription) Tier() Tier {
	return s.tier
}

// Status returns the billing status.
func (s *Subscription) Status() SubscriptionStatus {
	return s.status
}

// MaxQuotationsPerMonth returns the monthly quotation allowance.
// The boolean is false when the subscription is unlimited.
func (s *Subscription) MaxQuotationsPerMonth() (int64, bool) {
	if s.maxQuotationsPerMonth == nil {
		return 0, false
	}
	return *s.maxQuotationsPerMonth, true
}

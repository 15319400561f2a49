package services

import (
	"context"
	"fmt"
	"time"

	"freightmarket/internal/core/domain/model/connection"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/subscription"
)

// UnlimitedQuota is the Limit value of a LimitDecision for organizations
// whose tier imposes no limit. Callers must not render it as a number.
const UnlimitedQuota int64 = -1

// basicConnectionLimit is the hard connection cap of the basic tier.
const basicConnectionLimit int64 = 1

// SubscriptionStore reads an organization's subscription, lazily creating
// the basic default for organizations that have none. The creation is the
// only write the quota guard ever triggers, and it is idempotent after the
// first success.
type SubscriptionStore interface {
	GetOrCreate(ctx context.Context, organizationID kernel.UUID) (*subscription.Subscription, error)
}

// QuotationCounter counts quotations created by a forwarder organization
// since a point in time.
type QuotationCounter interface {
	CountByForwarderSince(ctx context.Context, forwarderOrgID kernel.UUID, since time.Time) (int64, error)
}

// ConnectionCounter counts an organization's pending and connected
// connections in a given role, optionally excluding one connection (used
// when re-validating during an edit of that same connection).
type ConnectionCounter interface {
	CountActiveByOrganization(
		ctx context.Context,
		organizationID kernel.UUID,
		role connection.Role,
		excludeID *kernel.UUID,
	) (int64, error)
}

// LimitDecision is the outcome of a quota check. When Allowed is false,
// Reason carries a user-facing explanation that callers are expected to
// surface verbatim in their forbidden-class error.
type LimitDecision struct {
	Allowed bool
	Reason  string
	Current int64
	Limit   int64
}

// QuotaGuard decides whether an organization may create another quotation or
// connection under its subscription tier. The decision logic is pure; the
// counts come from the injected collaborators, whose failures propagate
// unmodified.
//
// The guard is check-then-act: it reads a count, and the caller performs the
// insert in a separate step. Two concurrent requests from the same basic-tier
// organization can both pass the check at current = limit-1 and both insert.
// Callers that need the limit to hold strictly must run the check and the
// insert inside one serializable transaction or back it with a database
// constraint; the guard itself does not close the race.
type QuotaGuard struct {
	subscriptions SubscriptionStore
	quotations    QuotationCounter
	connections   ConnectionCounter
}

// NewQuotaGuard creates a QuotaGuard with its reading collaborators.
func NewQuotaGuard(
	subscriptions SubscriptionStore,
	quotations QuotationCounter,
	connections ConnectionCounter,
) *QuotaGuard {
	return &QuotaGuard{
		subscriptions: subscriptions,
		quotations:    quotations,
		connections:   connections,
	}
}

// OrganizationSubscription returns the organization's subscription, creating
// the active basic default (five quotations per month) on first read.
func (g *QuotaGuard) OrganizationSubscription(
	ctx context.Context,
	organizationID kernel.UUID,
) (*subscription.Subscription, error) {
	if err := organizationID.Validate(); err != nil {
		return nil, err
	}
	return g.subscriptions.GetOrCreate(ctx, organizationID)
}

// QuotationsThisMonth counts the quotations the organization created since
// the first day of the current calendar month. The boundary is the server's
// wall clock; organization time zones are deliberately not considered.
func (g *QuotaGuard) QuotationsThisMonth(
	ctx context.Context,
	organizationID kernel.UUID,
) (int64, error) {
	if err := organizationID.Validate(); err != nil {
		return 0, err
	}
	return g.quotations.CountByForwarderSince(ctx, organizationID, startOfMonth(time.Now()))
}

// CheckQuotationLimit decides whether the organization may create another
// quotation this month. Non-basic tiers and subscriptions without a monthly
// limit are always allowed; basic-tier organizations are allowed while their
// count this month is below the limit.
func (g *QuotaGuard) CheckQuotationLimit(
	ctx context.Context,
	organizationID kernel.UUID,
) (LimitDecision, error) {
	sub, err := g.OrganizationSubscription(ctx, organizationID)
	if err != nil {
		return LimitDecision{}, err
	}

	limit, limited := sub.MaxQuotationsPerMonth()
	if sub.Tier() != subscription.Basic || !limited {
		return LimitDecision{Allowed: true, Current: 0, Limit: UnlimitedQuota}, nil
	}

	current, err := g.QuotationsThisMonth(ctx, organizationID)
	if err != nil {
		return LimitDecision{}, err
	}

	decision := LimitDecision{
		Allowed: current < limit,
		Current: current,
		Limit:   limit,
	}
	if !decision.Allowed {
		decision.Reason = fmt.Sprintf(
			"monthly quotation limit of %d reached; upgrade your subscription to create more quotations",
			limit,
		)
	}
	return decision, nil
}

// CheckConnectionLimit decides whether the organization may hold another
// connection in the given role. Pending and connected connections both
// count; excludeConnectionID removes one connection from the count when
// re-validating an edit of that connection. The basic tier's hard limit is
// exactly one connection.
func (g *QuotaGuard) CheckConnectionLimit(
	ctx context.Context,
	organizationID kernel.UUID,
	role connection.Role,
	excludeConnectionID *kernel.UUID,
) (LimitDecision, error) {
	if err := role.Validate(); err != nil {
		return LimitDecision{}, err
	}

	sub, err := g.OrganizationSubscription(ctx, organizationID)
	if err != nil {
		return LimitDecision{}, err
	}

	if sub.Tier() != subscription.Basic {
		return LimitDecision{Allowed: true, Current: 0, Limit: UnlimitedQuota}, nil
	}

	current, err := g.connections.CountActiveByOrganization(ctx, organizationID, role, excludeConnectionID)
	if err != nil {
		return LimitDecision{}, err
	}

	decision := LimitDecision{
		Allowed: current < basicConnectionLimit,
		Current: current,
		Limit:   basicConnectionLimit,
	}
	if !decision.Allowed {
		decision.Reason = fmt.Sprintf(
			"connection limit of %d reached; upgrade your subscription to add more connections",
			basicConnectionLimit,
		)
	}
	return decision, nil
}

// startOfMonth truncates t to the first day of its calendar month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

package subscriptionrepo

import (
	"context"
	"errors"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/subscription"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormSubscriptionRepository implements SubscriptionRepository using GORM.
type GormSubscriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubscriptionRepository creates a new GORM subscription repository.
func NewGormSubscriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetOrCreate retrieves the organization's subscription, lazily creating the
// default basic one when no row exists yet. When two transactions race on
// the first read, the unique index on organization_id rejects the second
// insert and the loser re-reads the winner's row, so both converge on one
// subscription.
func (r *GormSubscriptionRepository) GetOrCreate(
	ctx context.Context,
	organizationID kernel.UUID,
) (*subscription.Subscription, error) {
	if err := organizationID.Validate(); err != nil {
		return nil, err
	}

	sub, err := r.get(ctx, organizationID)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created, err := subscription.NewDefaultSubscription(organizationID)
	if err != nil {
		return nil, err
	}

	dto := fromDomain(created)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return r.get(ctx, organizationID)
		}
		return nil, err
	}

	r.tracker.TrackAggregate(created.ID(), created)
	return created, nil
}

// Update saves an existing subscription to the database.
func (r *GormSubscriptionRepository) Update(ctx context.Context, aggregate *subscription.Subscription) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Select forces the limit column through even when it goes to NULL
	// (an upgrade to an unlimited tier).
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SubscriptionDTO{}).
		Where("id = ?", dto.ID).
		Select("tier", "status", "max_quotations_per_month").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSubscriptionRepository) get(
	ctx context.Context,
	organizationID kernel.UUID,
) (*subscription.Subscription, error) {
	var dto SubscriptionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "organization_id = ?", organizationID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// isUniqueViolation reports whether the error is a unique constraint
// violation: either translated by GORM, or the raw postgres error code
// 23505 from the pgx driver (gorm.io/driver/postgres) or from lib/pq.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

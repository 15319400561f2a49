package connectionrepo

import (
	"context"
	"errors"

	"freightmarket/internal/core/domain/model/connection"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormConnectionRepository implements ConnectionRepository using GORM.
type GormConnectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConnectionRepository creates a new GORM connection repository.
func NewGormConnectionRepository(db *gorm.DB, tracker aggregateTracker) *GormConnectionRepository {
	return &GormConnectionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new connection to the database.
func (r *GormConnectionRepository) Add(ctx context.Context, aggregate *connection.Connection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing connection to the database.
func (r *GormConnectionRepository) Update(ctx context.Context, aggregate *connection.Connection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ConnectionDTO{}).
		Where("id = ?", dto.ID).
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

// Get retrieves a connection by ID.
func (r *GormConnectionRepository) Get(ctx context.Context, id kernel.UUID) (*connection.Connection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConnectionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("connection", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetConnectedForwarders retrieves the forwarder organization identifiers a
// shipper organization holds a confirmed connection with.
func (r *GormConnectionRepository) GetConnectedForwarders(
	ctx context.Context,
	shipperOrgID kernel.UUID,
) ([]kernel.UUID, error) {
	if err := shipperOrgID.Validate(); err != nil {
		return nil, err
	}

	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&ConnectionDTO{}).
		Where("shipper_org_id = ? AND status = ?",
			shipperOrgID.Bytes(), connection.Connected.String()).
		Pluck("forwarder_org_id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	forwarders := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		forwarders = append(forwarders, id)
	}

	return forwarders, nil
}

// CountActiveByOrganization counts the pending and connected connections an
// organization holds in the given role.
func (r *GormConnectionRepository) CountActiveByOrganization(
	ctx context.Context,
	organizationID kernel.UUID,
	role connection.Role,
	excludeID *kernel.UUID,
) (int64, error) {
	if err := errors.Join(organizationID.Validate(), role.Validate()); err != nil {
		return 0, err
	}

	column := "shipper_org_id"
	if role == connection.RoleForwarder {
		column = "forwarder_org_id"
	}

	query := r.db.WithContext(ctx).
		Model(&ConnectionDTO{}).
		Where(column+" = ?", organizationID.Bytes()).
		Where("status IN ?", []string{
			connection.Pending.String(),
			connection.Connected.String(),
		})
	if excludeID != nil {
		query = query.Where("id <> ?", excludeID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

package inquiryrepo

import (
	"context"
	"errors"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInquiryRepository implements InquiryRepository using GORM.
type GormInquiryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInquiryRepository creates a new GORM inquiry repository.
func NewGormInquiryRepository(db *gorm.DB, tracker aggregateTracker) *GormInquiryRepository {
	return &GormInquiryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inquiry with its packages to the database.
func (r *GormInquiryRepository) Add(ctx context.Context, aggregate *inquiry.Inquiry) error {
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

// Update saves an existing inquiry to the database. Packages are immutable
// after creation and are deliberately left untouched.
func (r *GormInquiryRepository) Update(ctx context.Context, aggregate *inquiry.Inquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InquiryDTO{}).
		Where("id = ?", dto.ID).
		Omit(clause.Associations).
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

// Get retrieves an inquiry by ID, packages included.
func (r *GormInquiryRepository) Get(ctx context.Context, id kernel.UUID) (*inquiry.Inquiry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InquiryDTO
	err := r.db.WithContext(ctx).
		Preload("Packages", func(db *gorm.DB) *gorm.DB {
			return db.Order("packages.position ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inquiry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves every inquiry currently accepting quotations.
func (r *GormInquiryRepository) GetAllOpen(ctx context.Context) ([]*inquiry.Inquiry, error) {
	var dtos []InquiryDTO
	err := r.db.WithContext(ctx).
		Preload("Packages", func(db *gorm.DB) *gorm.DB {
			return db.Order("packages.position ASC")
		}).
		Find(&dtos, "status = ?", inquiry.Open.String()).Error
	if err != nil {
		return nil, err
	}

	inquiries := make([]*inquiry.Inquiry, 0, len(dtos))
	for _, dto := range dtos {
		inq, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, nil
}

// AddResponse saves a new forwarder response record to the database.
func (r *GormInquiryRepository) AddResponse(ctx context.Context, response *inquiry.ForwarderResponse) error {
	if err := response.Validate(); err != nil {
		return err
	}

	dto := responseFromDomain(response)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateResponse saves an existing forwarder response record to the database.
func (r *GormInquiryRepository) UpdateResponse(ctx context.Context, response *inquiry.ForwarderResponse) error {
	if err := response.Validate(); err != nil {
		return err
	}

	dto := responseFromDomain(response)
	result := r.db.WithContext(ctx).
		Model(&ForwarderResponseDTO{}).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetResponse retrieves the response of one forwarder organization to one
// inquiry.
func (r *GormInquiryRepository) GetResponse(
	ctx context.Context,
	inquiryID, forwarderOrgID kernel.UUID,
) (*inquiry.ForwarderResponse, error) {
	if err := errors.Join(inquiryID.Validate(), forwarderOrgID.Validate()); err != nil {
		return nil, err
	}

	var dto ForwarderResponseDTO
	err := r.db.WithContext(ctx).
		First(&dto, "inquiry_id = ? AND forwarder_org_id = ?",
			inquiryID.Bytes(), forwarderOrgID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("forwarderResponse", inquiryID.String())
		}
		return nil, err
	}

	return responseToDomain(dto)
}

// GetResponses retrieves all response records of one inquiry.
func (r *GormInquiryRepository) GetResponses(
	ctx context.Context,
	inquiryID kernel.UUID,
) ([]*inquiry.ForwarderResponse, error) {
	if err := inquiryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ForwarderResponseDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "inquiry_id = ?", inquiryID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	responses := make([]*inquiry.ForwarderResponse, 0, len(dtos))
	for _, dto := range dtos {
		response, domainErr := responseToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		responses = append(responses, response)
	}

	return responses, nil
}

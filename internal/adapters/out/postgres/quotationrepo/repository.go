package quotationrepo

import (
	"context"
	"errors"
	"time"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/quotation"
	"freightmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuotationRepository implements QuotationRepository using GORM.
type GormQuotationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuotationRepository creates a new GORM quotation repository.
func NewGormQuotationRepository(db *gorm.DB, tracker aggregateTracker) *GormQuotationRepository {
	return &GormQuotationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quotation to the database.
func (r *GormQuotationRepository) Add(ctx context.Context, aggregate *quotation.Quotation) error {
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

// Update saves an existing quotation to the database.
func (r *GormQuotationRepository) Update(ctx context.Context, aggregate *quotation.Quotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Select forces every mutable column through, including cost segments
	// that happen to be zero.
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&QuotationDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "pre_carriage", "main_carriage", "on_carriage",
			"additional_charges", "currency", "valid_until").
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

// Get retrieves a quotation by ID.
func (r *GormQuotationRepository) Get(ctx context.Context, id kernel.UUID) (*quotation.Quotation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuotationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quotation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByInquiryAndForwarder retrieves the single quotation one forwarder
// organization holds against one inquiry.
func (r *GormQuotationRepository) GetByInquiryAndForwarder(
	ctx context.Context,
	inquiryID, forwarderOrgID kernel.UUID,
) (*quotation.Quotation, error) {
	if err := errors.Join(inquiryID.Validate(), forwarderOrgID.Validate()); err != nil {
		return nil, err
	}

	var dto QuotationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "inquiry_id = ? AND forwarder_org_id = ?",
			inquiryID.Bytes(), forwarderOrgID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quotation", inquiryID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByInquiry retrieves every quotation against one inquiry.
func (r *GormQuotationRepository) GetAllByInquiry(
	ctx context.Context,
	inquiryID kernel.UUID,
) ([]*quotation.Quotation, error) {
	if err := inquiryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []QuotationDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "inquiry_id = ?", inquiryID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllSubmittedExpired retrieves submitted quotations whose validity date
// lies before the given moment.
func (r *GormQuotationRepository) GetAllSubmittedExpired(
	ctx context.Context,
	now time.Time,
) ([]*quotation.Quotation, error) {
	var dtos []QuotationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND valid_until < ?", quotation.Submitted.String(), now).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountByForwarderSince counts the quotations a forwarder organization
// created at or after the given moment, regardless of status.
func (r *GormQuotationRepository) CountByForwarderSince(
	ctx context.Context,
	forwarderOrgID kernel.UUID,
	since time.Time,
) (int64, error) {
	if err := forwarderOrgID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&QuotationDTO{}).
		Where("forwarder_org_id = ? AND created_at >= ?", forwarderOrgID.Bytes(), since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func toDomainSlice(dtos []QuotationDTO) ([]*quotation.Quotation, error) {
	quotations := make([]*quotation.Quotation, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, q)
	}
	return quotations, nil
}

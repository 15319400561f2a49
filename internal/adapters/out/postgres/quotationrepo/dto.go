// Package quotationrepo provides data transfer objects and mapping functions
// for quotation persistence.
package quotationrepo

import (
	"time"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/quotation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotationDTO represents the database structure for persisting quotation
// aggregates. Cost segments are stored as exact numerics; the total price is
// never stored, it is always recomputed from the breakdown.
type QuotationDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InquiryID         uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_quotations_inquiry_forwarder"`
	ForwarderOrgID    uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_quotations_inquiry_forwarder"`
	Status            string          `gorm:"index"`
	PreCarriage       decimal.Decimal `gorm:"type:numeric(14,2)"`
	MainCarriage      decimal.Decimal `gorm:"type:numeric(14,2)"`
	OnCarriage        decimal.Decimal `gorm:"type:numeric(14,2)"`
	AdditionalCharges decimal.Decimal `gorm:"type:numeric(14,2)"`
	Currency          string          `gorm:"type:char(3)"`
	ValidUntil        time.Time
	CreatedAt         time.Time `gorm:"index"`
}

// TableName specifies the database table name for quotation entities.
func (QuotationDTO) TableName() string {
	return "quotations"
}

// fromDomain converts a quotation domain aggregate to its database
// representation.
func fromDomain(aggregate *quotation.Quotation) QuotationDTO {
	breakdown := aggregate.Breakdown()
	return QuotationDTO{
		ID:                aggregate.ID().Bytes(),
		InquiryID:         aggregate.InquiryID().Bytes(),
		ForwarderOrgID:    aggregate.ForwarderOrgID().Bytes(),
		Status:            aggregate.Status().String(),
		PreCarriage:       breakdown.PreCarriage(),
		MainCarriage:      breakdown.MainCarriage(),
		OnCarriage:        breakdown.OnCarriage(),
		AdditionalCharges: breakdown.AdditionalCharges(),
		Currency:          breakdown.Currency(),
		ValidUntil:        aggregate.ValidUntil(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a quotation domain aggregate using
// RestoreQuotation.
func toDomain(dto QuotationDTO) (*quotation.Quotation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	inquiryID, err := kernel.UUIDFromBytes(dto.InquiryID[:])
	if err != nil {
		return nil, err
	}

	forwarderOrgID, err := kernel.UUIDFromBytes(dto.ForwarderOrgID[:])
	if err != nil {
		return nil, err
	}

	breakdown, err := quotation.NewCostBreakdown(
		dto.PreCarriage,
		dto.MainCarriage,
		dto.OnCarriage,
		dto.AdditionalCharges,
		dto.Currency,
	)
	if err != nil {
		return nil, err
	}

	return quotation.RestoreQuotation(
		id,
		inquiryID,
		forwarderOrgID,
		quotation.StatusFromString(dto.Status),
		breakdown,
		dto.ValidUntil,
		dto.CreatedAt,
	)
}

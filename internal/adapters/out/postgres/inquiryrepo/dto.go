// Package inquiryrepo provides data transfer objects and mapping functions
// for inquiry persistence. It covers the inquiry aggregate with its package
// collection and the forwarder response records created at publication.
package inquiryrepo

import (
	"time"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InquiryDTO represents the database structure for persisting inquiry
// aggregates. Statuses are stored as their wire strings so read-side SQL
// can filter on them directly.
type InquiryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipperOrgID uuid.UUID `gorm:"type:uuid;index"`
	ServiceType  string
	Status       string       `gorm:"index"`
	Packages     []PackageDTO `gorm:"foreignKey:InquiryID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for inquiry entities.
func (InquiryDTO) TableName() string {
	return "inquiries"
}

// PackageDTO represents one cargo line of an inquiry. Optional measurement
// fields are nullable; Position preserves the order the shipper entered the
// packages in.
type PackageDTO struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	InquiryID        uuid.UUID `gorm:"type:uuid;index"`
	Position         int
	GrossWeight      float64
	ChargeableWeight *float64
	Length           *float64
	Width            *float64
	Height           *float64
	Volume           *float64
	Pieces           int
	Dangerous        bool
	Temperature      *string
	SpecialHandling  *string
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// ForwarderResponseDTO represents the delivery record of one inquiry to one
// forwarder organization. The pair (inquiry, forwarder) is unique.
type ForwarderResponseDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	InquiryID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_responses_inquiry_forwarder"`
	ForwarderOrgID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_responses_inquiry_forwarder"`
	Status         string    `gorm:"index"`
	SentAt         time.Time
	ViewedAt       *time.Time
}

// TableName specifies the database table name for forwarder responses.
func (ForwarderResponseDTO) TableName() string {
	return "forwarder_responses"
}

// fromDomain converts an inquiry domain aggregate to its database
// representation, packages included.
func fromDomain(aggregate *inquiry.Inquiry) InquiryDTO {
	packages := aggregate.Packages()
	packageDTOs := make([]PackageDTO, 0, len(packages))
	for i, pkg := range packages {
		packageDTOs = append(packageDTOs, packageFromDomain(aggregate.ID(), i, pkg))
	}

	return InquiryDTO{
		ID:           aggregate.ID().Bytes(),
		ShipperOrgID: aggregate.ShipperOrgID().Bytes(),
		ServiceType:  aggregate.ServiceType().String(),
		Status:       aggregate.Status().String(),
		Packages:     packageDTOs,
	}
}

func packageFromDomain(inquiryID kernel.UUID, position int, pkg inquiry.Package) PackageDTO {
	dto := PackageDTO{
		InquiryID:   inquiryID.Bytes(),
		Position:    position,
		GrossWeight: pkg.GrossWeight(),
		Pieces:      pkg.Pieces(),
		Dangerous:   pkg.IsDangerous(),
	}
	if chargeable, ok := pkg.ChargeableWeight(); ok {
		dto.ChargeableWeight = &chargeable
	}
	if length, width, height, ok := pkg.Dimensions(); ok {
		dto.Length = &length
		dto.Width = &width
		dto.Height = &height
	}
	if volume, ok := pkg.Volume(); ok {
		dto.Volume = &volume
	}
	if temperature, ok := pkg.Temperature(); ok {
		dto.Temperature = &temperature
	}
	if handling, ok := pkg.SpecialHandling(); ok {
		dto.SpecialHandling = &handling
	}
	return dto
}

// toDomain converts a database DTO to an inquiry domain aggregate using
// RestoreInquiry.
func toDomain(dto InquiryDTO) (*inquiry.Inquiry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperOrgID, err := kernel.UUIDFromBytes(dto.ShipperOrgID[:])
	if err != nil {
		return nil, err
	}

	packages := make([]inquiry.Package, 0, len(dto.Packages))
	for _, pkgDTO := range dto.Packages {
		pkg, pkgErr := packageToDomain(pkgDTO)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}

	return inquiry.RestoreInquiry(
		id,
		shipperOrgID,
		inquiry.ServiceTypeFromString(dto.ServiceType),
		inquiry.StatusFromString(dto.Status),
		packages,
	)
}

func packageToDomain(dto PackageDTO) (inquiry.Package, error) {
	opts := make([]inquiry.PackageOption, 0, 5)
	if dto.ChargeableWeight != nil {
		opts = append(opts, inquiry.WithChargeableWeight(*dto.ChargeableWeight))
	}
	if dto.Length != nil && dto.Width != nil && dto.Height != nil {
		opts = append(opts, inquiry.WithDimensions(*dto.Length, *dto.Width, *dto.Height))
	}
	if dto.Volume != nil {
		opts = append(opts, inquiry.WithVolume(*dto.Volume))
	}
	if dto.Dangerous {
		opts = append(opts, inquiry.WithDangerousGoods())
	}
	if dto.Temperature != nil {
		opts = append(opts, inquiry.WithTemperatureControl(*dto.Temperature))
	}
	if dto.SpecialHandling != nil {
		opts = append(opts, inquiry.WithSpecialHandling(*dto.SpecialHandling))
	}

	return inquiry.NewPackage(dto.GrossWeight, dto.Pieces, opts...)
}

// responseFromDomain converts a forwarder response to its database
// representation.
func responseFromDomain(response *inquiry.ForwarderResponse) ForwarderResponseDTO {
	return ForwarderResponseDTO{
		ID:             response.ID().Bytes(),
		InquiryID:      response.InquiryID().Bytes(),
		ForwarderOrgID: response.ForwarderOrgID().Bytes(),
		Status:         response.Status().String(),
		SentAt:         response.SentAt(),
		ViewedAt:       response.ViewedAt(),
	}
}

// responseToDomain converts a database DTO to a forwarder response using
// RestoreForwarderResponse.
func responseToDomain(dto ForwarderResponseDTO) (*inquiry.ForwarderResponse, error) {
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

	return inquiry.RestoreForwarderResponse(
		id,
		inquiryID,
		forwarderOrgID,
		inquiry.ResponseStatusFromString(dto.Status),
		dto.SentAt,
		dto.ViewedAt,
	)
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/services"
	"freightmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetInquiryCargoQueryHandler reads an inquiry's packages with direct SQL,
// rebuilds them as domain packages, and runs the freight calculator to
// derive the effective measurements and the shipment summary. Stored
// overrides win over calculated values exactly as they do at creation time.
type GetInquiryCargoQueryHandler struct {
	db *gorm.DB
}

// NewGetInquiryCargoQueryHandler creates a handler for the cargo manifest
// query.
func NewGetInquiryCargoQueryHandler(db *gorm.DB) GetInquiryCargoQueryHandler {
	return GetInquiryCargoQueryHandler{db: db}
}

// Handle executes the query. It returns errs.ErrObjectNotFound when the
// inquiry does not exist.
func (h GetInquiryCargoQueryHandler) Handle(
	ctx context.Context,
	query GetInquiryCargoQuery,
) (GetInquiryCargoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInquiryCargoQueryResponse{}, err
	}

	var serviceType string
	row := h.db.WithContext(ctx).Raw(
		`SELECT service_type FROM inquiries WHERE id = ?`,
		query.InquiryID().Bytes(),
	).Row()
	if err := row.Scan(&serviceType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetInquiryCargoQueryResponse{},
				errs.NewObjectNotFoundError("inquiryId", query.InquiryID())
		}
		return GetInquiryCargoQueryResponse{}, err
	}

	packages, err := h.loadPackages(ctx, query)
	if err != nil {
		return GetInquiryCargoQueryResponse{}, err
	}

	calculator := services.NewFreightCalculator()
	processed, summary := calculator.ProcessPackages(
		packages, inquiry.ServiceTypeFromString(serviceType))

	response := GetInquiryCargoQueryResponse{
		InquiryID:   query.InquiryID(),
		ServiceType: serviceType,
		Packages:    make([]CargoPackageResponse, 0, len(processed)),
		Summary:     summary,
	}
	for _, p := range processed {
		pkg := CargoPackageResponse{
			GrossWeight:      p.Package.GrossWeight(),
			ChargeableWeight: p.ChargeableWeight,
			Volume:           p.Volume,
			Pieces:           p.Package.Pieces(),
			Dangerous:        p.Package.IsDangerous(),
		}
		if temperature, ok := p.Package.Temperature(); ok {
			pkg.Temperature = &temperature
		}
		if handling, ok := p.Package.SpecialHandling(); ok {
			pkg.SpecialHandling = &handling
		}
		response.Packages = append(response.Packages, pkg)
	}

	return response, nil
}

func (h GetInquiryCargoQueryHandler) loadPackages(
	ctx context.Context,
	query GetInquiryCargoQuery,
) ([]inquiry.Package, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			gross_weight,
			chargeable_weight,
			length,
			width,
			height,
			volume,
			pieces,
			dangerous,
			temperature,
			special_handling
		FROM packages
		WHERE inquiry_id = ?
		ORDER BY position
	`, query.InquiryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]inquiry.Package, 0)
	for rows.Next() {
		var (
			grossWeight      float64
			chargeableWeight sql.NullFloat64
			length           sql.NullFloat64
			width            sql.NullFloat64
			height           sql.NullFloat64
			volume           sql.NullFloat64
			pieces           int
			dangerous        bool
			temperature      sql.NullString
			specialHandling  sql.NullString
		)

		if err = rows.Scan(
			&grossWeight, &chargeableWeight, &length, &width, &height,
			&volume, &pieces, &dangerous, &temperature, &specialHandling,
		); err != nil {
			return nil, err
		}

		opts := make([]inquiry.PackageOption, 0, 5)
		if chargeableWeight.Valid {
			opts = append(opts, inquiry.WithChargeableWeight(chargeableWeight.Float64))
		}
		if length.Valid && width.Valid && height.Valid {
			opts = append(opts, inquiry.WithDimensions(
				length.Float64, width.Float64, height.Float64))
		}
		if volume.Valid {
			opts = append(opts, inquiry.WithVolume(volume.Float64))
		}
		if dangerous {
			opts = append(opts, inquiry.WithDangerousGoods())
		}
		if temperature.Valid {
			opts = append(opts, inquiry.WithTemperatureControl(temperature.String))
		}
		if specialHandling.Valid {
			opts = append(opts, inquiry.WithSpecialHandling(specialHandling.String))
		}

		pkg, pkgErr := inquiry.NewPackage(grossWeight, pieces, opts...)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}

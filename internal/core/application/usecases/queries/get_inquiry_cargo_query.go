package queries

import (
	"errors"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/services"
	"freightmarket/internal/pkg/guard"
)

var ErrGetInquiryCargoQueryIsNotConstructed = errors.New(
	"GetInquiryCargoQuery must be created via NewGetInquiryCargoQuery constructor",
)

// GetInquiryCargoQuery retrieves the cargo manifest of one inquiry: every
// package with its derived measurements, plus the shipment-level summary.
type GetInquiryCargoQuery struct {
	inquiryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInquiryCargoQuery creates a query for an inquiry's cargo manifest.
func NewGetInquiryCargoQuery(inquiryID kernel.UUID) (GetInquiryCargoQuery, error) {
	if err := inquiryID.Validate(); err != nil {
		return GetInquiryCargoQuery{}, err
	}

	return GetInquiryCargoQuery{
		inquiryID: inquiryID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInquiryCargoQuery) Validate() error {
	return q.guard.Validate(ErrGetInquiryCargoQueryIsNotConstructed)
}

// InquiryID returns the inquiry whose cargo is requested.
func (q GetInquiryCargoQuery) InquiryID() kernel.UUID {
	return q.inquiryID
}

// CargoPackageResponse is one package of the manifest with its effective
// volume and chargeable weight after overrides and fallbacks.
type CargoPackageResponse struct {
	GrossWeight      float64
	ChargeableWeight float64
	Volume           float64
	Pieces           int
	Dangerous        bool
	Temperature      *string
	SpecialHandling  *string
}

// GetInquiryCargoQueryResponse is the cargo manifest of one inquiry.
type GetInquiryCargoQueryResponse struct {
	InquiryID   kernel.UUID
	ServiceType string
	Packages    []CargoPackageResponse
	Summary     services.CargoSummary
}

package inquiry

import (
	"errors"
	"math"

	"freightmarket/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package was not created
// through the NewPackage constructor.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is a physical unit of an inquiry: one line of cargo with a gross
// weight, a piece count, and optional measurement data. Packages are immutable
// once the inquiry has been published; the freight calculator consumes them to
// derive volumes and chargeable weights.
//
// Measurement fields are optional. A package may carry an explicit volume, a
// set of dimensions, an explicit chargeable-weight override, or none of them;
// missing values contribute zero to downstream arithmetic, never an error.
type Package struct {
	grossWeight      float64
	chargeableWeight *float64
	length           *float64
	width            *float64
	height           *float64
	volume           *float64
	pieces           int
	dangerous        bool
	temperature      *string
	specialHandling  *string

	isConstructed bool
}

// PackageOption configures optional package attributes at construction time.
type PackageOption func(*Package)

// WithChargeableWeight sets an explicit chargeable weight in kilograms,
// overriding the volumetric calculation.
func WithChargeableWeight(weight float64) PackageOption {
	return func(p *Package) { p.chargeableWeight = &weight }
}

// WithDimensions sets the package dimensions in centimeters.
func WithDimensions(length, width, height float64) PackageOption {
	return func(p *Package) {
		p.length = &length
		p.width = &width
		p.height = &height
	}
}

// WithVolume sets an explicit volume in cubic meters, overriding the
// dimension-derived calculation.
func WithVolume(volume float64) PackageOption {
	return func(p *Package) { p.volume = &volume }
}

// WithDangerousGoods marks the package as containing dangerous goods.
func WithDangerousGoods() PackageOption {
	return func(p *Package) { p.dangerous = true }
}

// WithTemperatureControl records the required temperature range.
func WithTemperatureControl(temperatureRange string) PackageOption {
	return func(p *Package) { p.temperature = &temperatureRange }
}

// WithSpecialHandling records special handling instructions.
func WithSpecialHandling(instructions string) PackageOption {
	return func(p *Package) { p.specialHandling = &instructions }
}

// NewPackage creates a package with the given gross weight in kilograms and
// piece count. Gross weight must be non-negative and finite; pieces must be
// positive. Optional measurements are supplied through options and validated
// as a group.
func NewPackage(grossWeight float64, pieces int, opts ...PackageOption) (Package, error) {
	p := Package{
		grossWeight:   grossWeight,
		pieces:        pieces,
		isConstructed: true,
	}
	for _, opt := range opts {
		opt(&p)
	}

	if err := errors.Join(
		validateNonNegative("grossWeight", grossWeight),
		validateOptionalNonNegative("chargeableWeight", p.chargeableWeight),
		validateOptionalNonNegative("length", p.length),
		validateOptionalNonNegative("width", p.width),
		validateOptionalNonNegative("height", p.height),
		validateOptionalNonNegative("volume", p.volume),
		validatePieces(pieces),
	); err != nil {
		return Package{}, err
	}

	return p, nil
}

func validateNonNegative(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsOutOfRangeError(name, v, 0, math.MaxFloat64)
	}
	return nil
}

func validateOptionalNonNegative(name string, v *float64) error {
	if v == nil {
		return nil
	}
	return validateNonNegative(name, *v)
}

func validatePieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsOutOfRangeError("pieces", pieces, 1, math.MaxInt32)
	}
	return nil
}

// Validate ensures the Package was created through NewPackage.
func (p Package) Validate() error {
	if !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// GrossWeight returns the actual weight in kilograms.
func (p Package) GrossWeight() float64 {
	return p.grossWeight
}

// Pieces returns the number of pieces in the package.
func (p Package) Pieces() int {
	return p.pieces
}

// ChargeableWeight returns the explicit chargeable-weight override, if any.
func (p Package) ChargeableWeight() (float64, bool) {
	if p.chargeableWeight == nil {
		return 0, false
	}
	return *p.chargeableWeight, true
}

// Dimensions returns length, width, and height in centimeters. The boolean is
// false when the package carries no complete set of dimensions.
func (p Package) Dimensions() (length, width, height float64, ok bool) {
	if p.length == nil || p.width == nil || p.height == nil {
		return 0, 0, 0, false
	}
	return *p.length, *p.width, *p.height, true
}

// Volume returns the explicit volume override in cubic meters, if any.
func (p Package) Volume() (float64, bool) {
	if p.volume == nil {
		return 0, false
	}
	return *p.volume, true
}

// IsDangerous reports whether the package contains dangerous goods.
func (p Package) IsDangerous() bool {
	return p.dangerous
}

// Temperature returns the required temperature range, if any.
func (p Package) Temperature() (string, bool) {
	if p.temperature == nil {
		return "", false
	}
	return *p.temperature, true
}

// SpecialHandling returns the special handling instructions, if any.
func (p Package) SpecialHandling() (string, bool) {
	if p.specialHandling == nil {
		return "", false
	}
	return *p.specialHandling, true
}

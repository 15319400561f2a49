package services

import (
	"freightmarket/internal/core/domain/model/inquiry"
)

// Volumetric conversion factors in kilograms per cubic meter. These are the
// standard freight-industry density conventions (IATA air, sea LCL) and must
// not be changed without a named commercial override.
const (
	airVolumetricFactor = 6000.0
	seaVolumetricFactor = 1000.0
)

// cubicCentimetersPerCubicMeter converts dimension products (cm³) to m³.
const cubicCentimetersPerCubicMeter = 1_000_000.0

// ProcessedPackage is a package augmented with its derived measurements:
// the effective volume and the effective chargeable weight after applying
// overrides and fallbacks.
type ProcessedPackage struct {
	Package          inquiry.Package
	Volume           float64
	ChargeableWeight float64
}

// CargoSummary aggregates a package collection into shipment-level totals
// and requirement flags.
type CargoSummary struct {
	TotalGrossWeight      float64
	TotalChargeableWeight float64
	TotalVolume           float64
	TotalPieces           int
	HasDangerousGoods     bool
	HasTemperatureControl bool
	HasSpecialHandling    bool
}

// FreightCalculator is the measurement engine converting physical package
// data into billable weight. It is pure arithmetic: no I/O, no state, safe
// for concurrent use.
//
// Missing numeric inputs are treated as zero before arithmetic; a package
// without volume or complete dimensions contributes zero volume, never an
// error.
type FreightCalculator struct{}

// NewFreightCalculator creates a FreightCalculator.
func NewFreightCalculator() FreightCalculator {
	return FreightCalculator{}
}

// CalculateVolume converts dimensions in centimeters to a volume in cubic
// meters. No rounding is applied beyond IEEE double precision.
func (c FreightCalculator) CalculateVolume(length, width, height float64) float64 {
	return length * width * height / cubicCentimetersPerCubicMeter
}

// CalculateChargeableWeight computes the billable weight in kilograms for
// the given transport mode: air and sea freight bill the greater of actual
// weight and volumetric weight (volume times the mode's density factor);
// road and rail bill actual weight unchanged.
//
// For every mode and all non-negative inputs the result is at least the
// gross weight.
func (c FreightCalculator) CalculateChargeableWeight(
	serviceType inquiry.ServiceType,
	grossWeight float64,
	volume float64,
) float64 {
	switch serviceType {
	case inquiry.AirFreight:
		return max(grossWeight, volume*airVolumetricFactor)
	case inquiry.SeaFreight:
		return max(grossWeight, volume*seaVolumetricFactor)
	default:
		return grossWeight
	}
}

// ProcessPackages derives per-package measurements and the shipment-level
// aggregate for a package collection.
//
// For each package the effective volume is the explicit volume override when
// present, the dimension-derived volume when a complete set of dimensions is
// present, and zero otherwise. The effective chargeable weight is the
// explicit override when present and the mode calculation otherwise, never
// a partial value.
func (c FreightCalculator) ProcessPackages(
	packages []inquiry.Package,
	serviceType inquiry.ServiceType,
) ([]ProcessedPackage, CargoSummary) {
	processed := make([]ProcessedPackage, 0, len(packages))
	var summary CargoSummary

	for _, pkg := range packages {
		volume, ok := pkg.Volume()
		if !ok {
			if length, width, height, hasDims := pkg.Dimensions(); hasDims {
				volume = c.CalculateVolume(length, width, height)
			}
		}

		chargeable, ok := pkg.ChargeableWeight()
		if !ok {
			chargeable = c.CalculateChargeableWeight(serviceType, pkg.GrossWeight(), volume)
		}

		processed = append(processed, ProcessedPackage{
			Package:          pkg,
			Volume:           volume,
			ChargeableWeight: chargeable,
		})

		summary.TotalGrossWeight += pkg.GrossWeight()
		summary.TotalChargeableWeight += chargeable
		summary.TotalVolume += volume
		summary.TotalPieces += pkg.Pieces()
		summary.HasDangerousGoods = summary.HasDangerousGoods || pkg.IsDangerous()
		if _, hasTemp := pkg.Temperature(); hasTemp {
			summary.HasTemperatureControl = true
		}
		if _, hasHandling := pkg.SpecialHandling(); hasHandling {
			summary.HasSpecialHandling = true
		}
	}

	return processed, summary
}

package inquiry

import (
	"fmt"

	"freightmarket/internal/pkg/errs"
)

// ServiceType identifies the transport mode of an inquiry. The mode decides
// how chargeable weight is computed: air and sea freight bill the greater of
// actual and volumetric weight, road and rail bill actual weight only.
type ServiceType int

const (
	// ServiceTypeUnknown represents an unrecognized transport mode.
	// It is billed by actual weight, never volumetrically.
	ServiceTypeUnknown ServiceType = iota

	AirFreight
	SeaFreight
	RoadFreight
	RailFreight
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown: "unknown",
		AirFreight:         "air_freight",
		SeaFreight:         "sea_freight",
		RoadFreight:        "road_freight",
		RailFreight:        "rail_freight",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // ServiceTypeUnknown is intentionally excluded as it's invalid
	return map[ServiceType]string{
		AirFreight:  "air_freight",
		SeaFreight:  "sea_freight",
		RoadFreight: "road_freight",
		RailFreight: "rail_freight",
	}
}

// ServiceTypeFromString resolves a raw persisted service-type string.
// Tolerant: an unrecognized string resolves to ServiceTypeUnknown, which
// downstream freight calculations treat as actual-weight billing.
func ServiceTypeFromString(s string) ServiceType {
	for st, str := range getValidServiceTypeStrings() {
		if str == s {
			return st
		}
	}
	return ServiceTypeUnknown
}

// Validate checks that the ServiceType is one of the four transport modes.
func (st ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[st]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceType is invalid",
			fmt.Errorf("%d is not a valid service type", st))
	}
	return nil
}

// String returns the persisted wire form ("air_freight", "sea_freight", ...).
func (st ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[st]; ok {
		return str
	}
	return "unknown"
}

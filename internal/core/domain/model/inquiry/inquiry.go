package inquiry

import (
	"errors"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"
)

// ErrInquiryIsNotConstructed is returned when an Inquiry instance was not
// created through NewInquiry or RestoreInquiry.
var ErrInquiryIsNotConstructed = errors.New("Inquiry must be created via NewInquiry constructor")

// Inquiry is the aggregate root for a shipper's transport request. It owns
// the package collection and the shipper-side lifecycle; forwarder-specific
// facts (responses, quotations) live in their own aggregates and are combined
// with the inquiry only inside the status views.
//
// Invariants:
//   - valid unique identifier and shipper organization reference
//   - valid service type
//   - at least one package
//   - status transitions follow the Draft → Open → final-state machine
//
// Forwarders never mutate an inquiry directly: cancel belongs to the shipper,
// award, expire, and close to the marketplace.
type Inquiry struct {
	id            kernel.UUID
	shipperOrgID  kernel.UUID
	serviceType   ServiceType
	status        Status
	packages      []Package
	isConstructed bool
}

// NewInquiry creates a draft inquiry for the given shipper organization.
// All packages must themselves be constructed through NewPackage.
func NewInquiry(
	id kernel.UUID,
	shipperOrgID kernel.UUID,
	serviceType ServiceType,
	packages []Package,
) (*Inquiry, error) {
	inq := &Inquiry{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		inq.setID(id),
		inq.setShipperOrgID(shipperOrgID),
		inq.setServiceType(serviceType),
		inq.setPackages(packages),
	); err != nil {
		return nil, err
	}

	return inq, nil
}

// RestoreInquiry reconstructs an inquiry from persistence with an explicit
// status. Used only by repository adapters.
func RestoreInquiry(
	id kernel.UUID,
	shipperOrgID kernel.UUID,
	serviceType ServiceType,
	status Status,
	packages []Package,
) (*Inquiry, error) {
	inq, err := NewInquiry(id, shipperOrgID, serviceType, packages)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	inq.status = status
	return inq, nil
}

// Validate ensures the Inquiry was created through a constructor.
func (i *Inquiry) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInquiryIsNotConstructed
	}
	return nil
}

// IsEqual compares two inquiries by identifier.
func (i *Inquiry) IsEqual(other *Inquiry) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the inquiry's unique identifier.
func (i *Inquiry) ID() kernel.UUID {
	return i.id
}

// ShipperOrgID returns the owning shipper organization's identifier.
func (i *Inquiry) ShipperOrgID() kernel.UUID {
	return i.shipperOrgID
}

// ServiceType returns the transport mode of the inquiry.
func (i *Inquiry) ServiceType() ServiceType {
	return i.serviceType
}

// Status returns the current shipper-side lifecycle status.
func (i *Inquiry) Status() Status {
	return i.status
}

// Packages returns a copy of the package collection.
func (i *Inquiry) Packages() []Package {
	packages := make([]Package, len(i.packages))
	copy(packages, i.packages)
	return packages
}

// Open publishes the inquiry to forwarders. Valid only from Draft.
func (i *Inquiry) Open() error {
	return i.transition(Status.Open)
}

// Award marks the inquiry as awarded after the shipper accepted a quotation.
// Valid only from Open.
func (i *Inquiry) Award() error {
	return i.transition(Status.Award)
}

// Cancel withdraws the inquiry. Valid from Draft and Open; whether the
// shipper is still allowed to cancel (no quotations received) is a view-level
// rule checked by the caller.
func (i *Inquiry) Cancel() error {
	return i.transition(Status.Cancel)
}

// Expire marks the inquiry as expired. Valid only from Open.
func (i *Inquiry) Expire() error {
	return i.transition(Status.Expire)
}

// Close marks the inquiry as automatically closed. Valid only from Open.
func (i *Inquiry) Close() error {
	return i.transition(Status.Close)
}

func (i *Inquiry) transition(apply func(Status) (Status, error)) error {
	newStatus, err := apply(i.status)
	if err != nil {
		return err
	}
	i.status = newStatus
	return nil
}

func (i *Inquiry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Inquiry) setShipperOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	i.shipperOrgID = orgID
	return nil
}

func (i *Inquiry) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	i.serviceType = serviceType
	return nil
}

func (i *Inquiry) setPackages(packages []Package) error {
	if len(packages) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}
	for _, p := range packages {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	i.packages = make([]Package, len(packages))
	copy(i.packages, packages)
	return nil
}

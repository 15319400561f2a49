package commands

import (
	"errors"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/guard"
)

var (
	ErrCreateInquiryCommandIsNotConstructed = errors.New(
		"CreateInquiryCommand must be created via NewCreateInquiryCommand constructor",
	)
)

// CreateInquiryCommand represents a shipper's request to create a new draft
// inquiry with its package collection.
type CreateInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID    kernel.UUID
	shipperOrgID kernel.UUID
	serviceType  inquiry.ServiceType
	packages     []inquiry.Package

	guard guard.ConstructorGuard
}

// NewCreateInquiryCommand creates a command to register a new inquiry.
// The service type must be a valid transport mode and at least one
// constructed package is required.
func NewCreateInquiryCommand(
	inquiryID kernel.UUID,
	shipperOrgID kernel.UUID,
	serviceType inquiry.ServiceType,
	packages []inquiry.Package,
) (CreateInquiryCommand, error) {
	cmd := CreateInquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInquiryID(inquiryID),
		cmd.setShipperOrgID(shipperOrgID),
		cmd.setServiceType(serviceType),
		cmd.setPackages(packages),
	); err != nil {
		return CreateInquiryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInquiryCommand) Validate() error {
	return c.guard.Validate(ErrCreateInquiryCommandIsNotConstructed)
}

// InquiryID returns the unique identifier for the new inquiry.
func (c CreateInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// ShipperOrgID returns the owning shipper organization's identifier.
func (c CreateInquiryCommand) ShipperOrgID() kernel.UUID {
	return c.shipperOrgID
}

// ServiceType returns the transport mode of the inquiry.
func (c CreateInquiryCommand) ServiceType() inquiry.ServiceType {
	return c.serviceType
}

// Packages returns the package collection.
func (c CreateInquiryCommand) Packages() []inquiry.Package {
	return c.packages
}

func (c *CreateInquiryCommand) setInquiryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.inquiryID = id
	return nil
}

func (c *CreateInquiryCommand) setShipperOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipperOrgID = id
	return nil
}

func (c *CreateInquiryCommand) setServiceType(serviceType inquiry.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateInquiryCommand) setPackages(packages []inquiry.Package) error {
	for _, p := range packages {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	c.packages = packages
	return nil
}

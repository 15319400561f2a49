package commands

import (
	"errors"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/guard"
)

var ErrRequestConnectionCommandIsNotConstructed = errors.New(
	"RequestConnectionCommand must be created via NewRequestConnectionCommand constructor",
)

// RequestConnectionCommand represents a shipper's request to establish a
// standing connection with a forwarder organization.
type RequestConnectionCommand struct { //nolint:recvcheck //using for validation
	connectionID   kernel.UUID
	shipperOrgID   kernel.UUID
	forwarderOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestConnectionCommand creates a command to request a connection.
func NewRequestConnectionCommand(
	connectionID, shipperOrgID, forwarderOrgID kernel.UUID,
) (RequestConnectionCommand, error) {
	cmd := RequestConnectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setConnectionID(connectionID),
		cmd.setShipperOrgID(shipperOrgID),
		cmd.setForwarderOrgID(forwarderOrgID),
	); err != nil {
		return RequestConnectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestConnectionCommand) Validate() error {
	return c.guard.Validate(ErrRequestConnectionCommandIsNotConstructed)
}

// ConnectionID returns the identifier for the new connection.
func (c RequestConnectionCommand) ConnectionID() kernel.UUID {
	return c.connectionID
}

// ShipperOrgID returns the requesting shipper organization's identifier.
func (c RequestConnectionCommand) ShipperOrgID() kernel.UUID {
	return c.shipperOrgID
}

// ForwarderOrgID returns the target forwarder organization's identifier.
func (c RequestConnectionCommand) ForwarderOrgID() kernel.UUID {
	return c.forwarderOrgID
}

func (c *RequestConnectionCommand) setConnectionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.connectionID = id
	return nil
}

func (c *RequestConnectionCommand) setShipperOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipperOrgID = id
	return nil
}

func (c *RequestConnectionCommand) setForwarderOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.forwarderOrgID = id
	return nil
}

// Package connection contains the standing shipper-forwarder relationship
// that enables inquiry dispatch between two organizations.
package connection

import (
	"errors"
	"fmt"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"
)

// ErrConnectionIsNotConstructed is returned when a Connection was not created
// through NewConnection or RestoreConnection.
var ErrConnectionIsNotConstructed = errors.New("Connection must be created via NewConnection constructor")

// Status is the lifecycle state of a connection. Both Pending and Connected
// count against the basic tier's connection quota; only a severed connection
// frees the slot.
type Status int

const (
	StatusUnknown Status = iota
	Pending
	Connected
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown has no persisted form
	return map[Status]string{
		Pending:   "pending",
		Connected: "connected",
	}
}

// StatusFromString resolves a raw persisted connection-status string.
// Tolerant: unrecognized input resolves to Pending.
func StatusFromString(s string) Status {
	for status, str := range getStatusStrings() {
		if str == s {
			return status
		}
	}
	return Pending
}

// Validate checks that the Status has a persisted form.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("connectionStatus is invalid",
			fmt.Errorf("%d is not a valid connection status", s))
	}
	return nil
}

// String returns the persisted wire form ("pending", "connected").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Role identifies which side of a connection an organization occupies.
// Quota counting is per role: the same organization may appear as shipper in
// one connection and forwarder in another.
type Role int

const (
	RoleUnknown Role = iota
	RoleShipper
	RoleForwarder
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown has no persisted form
	return map[Role]string{
		RoleShipper:   "shipper",
		RoleForwarder: "forwarder",
	}
}

// RoleFromString resolves a role string ("shipper" or "forwarder").
// Unrecognized input resolves to RoleUnknown, which fails Validate.
func RoleFromString(s string) Role {
	for role, str := range getRoleStrings() {
		if str == s {
			return role
		}
	}
	return RoleUnknown
}

// Validate checks that the Role is shipper or forwarder.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid connection role", r))
	}
	return nil
}

// String returns "shipper" or "forwarder".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Connection links a shipper organization with a forwarder organization.
// A pending connection awaits the forwarder's confirmation.
type Connection struct {
	id             kernel.UUID
	shipperOrgID   kernel.UUID
	forwarderOrgID kernel.UUID
	status         Status
	isConstructed  bool
}

// NewConnection creates a pending connection between the two organizations.
func NewConnection(id, shipperOrgID, forwarderOrgID kernel.UUID) (*Connection, error) {
	if err := errors.Join(
		id.Validate(),
		shipperOrgID.Validate(),
		forwarderOrgID.Validate(),
	); err != nil {
		return nil, err
	}
	if shipperOrgID.IsEqual(forwarderOrgID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("forwarderOrganizationId",
			fmt.Errorf("organization %s cannot connect to itself", forwarderOrgID))
	}

	return &Connection{
		id:             id,
		shipperOrgID:   shipperOrgID,
		forwarderOrgID: forwarderOrgID,
		status:         Pending,
		isConstructed:  true,
	}, nil
}

// RestoreConnection reconstructs a connection from persistence.
// Used only by repository adapters.
func RestoreConnection(id, shipperOrgID, forwarderOrgID kernel.UUID, status Status) (*Connection, error) {
	conn, err := NewConnection(id, shipperOrgID, forwarderOrgID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	conn.status = status
	return conn, nil
}

// Validate ensures the Connection was created through a constructor.
func (c *Connection) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConnectionIsNotConstructed
	}
	return nil
}

// ID returns the connection's unique identifier.
func (c *Connection) ID() kernel.UUID {
	return c.id
}

// ShipperOrgID returns the shipper organization's identifier.
func (c *Connection) ShipperOrgID() kernel.UUID {
	return c.shipperOrgID
}

// ForwarderOrgID returns the forwarder organization's identifier.
func (c *Connection) ForwarderOrgID() kernel.UUID {
	return c.forwarderOrgID
}

// Status returns the connection status.
func (c *Connection) Status() Status {
	return c.status
}

// Confirm transitions Pending to Connected when the forwarder accepts.
func (c *Connection) Confirm() error {
	if c.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("connectionStatus is invalid",
			fmt.Errorf("%s is not a valid status to confirm", c.status))
	}
	c.status = Connected
	return nil
}

// Package connectionrepo provides data transfer objects and mapping
// functions for connection persistence.
package connectionrepo

import (
	"freightmarket/internal/core/domain/model/connection"
	"freightmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConnectionDTO represents the database structure for persisting connection
// aggregates. The pair (shipper, forwarder) is unique: two organizations
// hold at most one connection.
type ConnectionDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipperOrgID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_connections_shipper_forwarder"`
	ForwarderOrgID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_connections_shipper_forwarder"`
	Status         string    `gorm:"index"`
}

// TableName specifies the database table name for connection entities.
func (ConnectionDTO) TableName() string {
	return "connections"
}

// fromDomain converts a connection domain aggregate to its database
// representation.
func fromDomain(aggregate *connection.Connection) ConnectionDTO {
	return ConnectionDTO{
		ID:             aggregate.ID().Bytes(),
		ShipperOrgID:   aggregate.ShipperOrgID().Bytes(),
		ForwarderOrgID: aggregate.ForwarderOrgID().Bytes(),
		Status:         aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a connection domain aggregate using
// RestoreConnection.
func toDomain(dto ConnectionDTO) (*connection.Connection, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperOrgID, err := kernel.UUIDFromBytes(dto.ShipperOrgID[:])
	if err != nil {
		return nil, err
	}

	forwarderOrgID, err := kernel.UUIDFromBytes(dto.ForwarderOrgID[:])
	if err != nil {
		return nil, err
	}

	return connection.RestoreConnection(
		id,
		shipperOrgID,
		forwarderOrgID,
		connection.StatusFromString(dto.Status),
	)
}

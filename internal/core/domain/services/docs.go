// Package services contains the domain services of the marketplace's
// workflow and billing rules core:
//
//   - ForwarderStatusView and ShipperStatusView derive role-specific display
//     statuses and permitted actions from the persisted facts of an inquiry,
//     its quotations, and its forwarder responses. Pure, no I/O.
//   - FreightCalculator converts physical package data into billable
//     chargeable weight and shipment-level totals. Pure arithmetic.
//   - QuotaGuard limits how many quotations and connections an organization
//     may create under its subscription tier, reading counts through
//     injected collaborators.
package services

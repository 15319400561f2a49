// Package inquiry contains the inquiry aggregate and its satellites: the
// shipper-side status machine, the transport service type, the physical
// package value object, and the per-forwarder response record.
//
// Status strings read from persistence are resolved through tolerant casters
// (StatusFromString, ServiceTypeFromString, ResponseStatusFromString) that
// fall back to documented defaults instead of failing, so a malformed row can
// never break a read path.
package inquiry

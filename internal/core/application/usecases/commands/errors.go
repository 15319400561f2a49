package commands

import "errors"

// Forbidden-class errors shared by the command handlers. The HTTP adapter
// maps them to 403 responses; the error message carries the user-facing
// explanation.
var (
	// ErrNotInquiryOwner is returned when an organization tries to mutate an
	// inquiry owned by a different shipper organization.
	ErrNotInquiryOwner = errors.New("inquiry belongs to a different organization")

	// ErrQuotationNotPermitted is returned when the forwarder's current view
	// of the inquiry does not allow creating or submitting a quotation.
	ErrQuotationNotPermitted = errors.New("quotation is not permitted for this inquiry")

	// ErrRejectionNotPermitted is returned when the forwarder's current view
	// of the inquiry does not allow rejecting it.
	ErrRejectionNotPermitted = errors.New("rejecting this inquiry is not permitted")

	// ErrCancellationNotPermitted is returned when the shipper can no longer
	// cancel the inquiry, typically because a quotation already arrived.
	ErrCancellationNotPermitted = errors.New("cancelling this inquiry is not permitted")

	// ErrQuotaExceeded is returned when a subscription quota denies an
	// operation. Wrapped with the quota guard's decision reason.
	ErrQuotaExceeded = errors.New("quota exceeded")
)

package inquiry

import (
	"fmt"

	"freightmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an inquiry.
//
// State transitions:
//
//	Draft ──> Open ──┬──> Awarded
//	  │              ├──> Closed
//	  │              ├──> Expired
//	  └──────────────┴──> Cancelled
//
// Awarded, Closed, Cancelled, and Expired are final states. Rejected is part
// of the persisted vocabulary but is never produced by a shipper-side
// transition; it appears only in forwarder-facing contexts.
//
// Status is a value object. The zero value (Unknown) is invalid and exists to
// catch uninitialized values; persisted strings are resolved through the
// tolerant StatusFromString caster instead.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status while the shipper is still editing.
	Draft

	// Open means the inquiry has been published to forwarders and is
	// accepting quotations.
	Open

	// Awarded means the shipper accepted one quotation. Final.
	Awarded

	// Closed means the marketplace closed the inquiry automatically. Final.
	Closed

	// Cancelled means the shipper withdrew the inquiry. Final.
	Cancelled

	// Expired means the inquiry passed its deadline unanswered. Final.
	Expired

	// Rejected is the forwarder-local view of an inquiry that was turned
	// down. It never appears on a shipper-owned inquiry record.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Open:      "open",
		Awarded:   "awarded",
		Closed:    "closed",
		Cancelled: "cancelled",
		Expired:   "expired",
		Rejected:  "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Open:      "open",
		Awarded:   "awarded",
		Closed:    "closed",
		Cancelled: "cancelled",
		Expired:   "expired",
		Rejected:  "rejected",
	}
}

// StatusFromString resolves a raw persisted status string to a Status.
// The caster is tolerant: an unrecognized or empty string resolves to Draft
// rather than failing, so a malformed row can never break a read path.
func StatusFromString(s string) Status {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status
		}
	}
	return Draft
}

// Validate checks that the Status is one of the persisted vocabulary values.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid inquiry status", s))
	}
	return nil
}

// String returns the persisted wire form of the status ("open", "awarded", ...).
// Implements fmt.Stringer; safe on any value, returning "unknown" for
// invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether the status is one of the absorbing shipper-side
// states: Awarded, Closed, Cancelled, or Expired.
func (s Status) IsFinal() bool {
	return s == Awarded || s == Closed || s == Cancelled || s == Expired
}

// Open transitions Draft to Open when the inquiry is published to forwarders.
func (s Status) Open() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to open", s))
	}
	return Open, nil
}

// Award transitions Open to Awarded when the shipper accepts a quotation.
func (s Status) Award() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to award", s))
	}
	return Awarded, nil
}

// Cancel transitions Draft or Open to Cancelled. Whether cancellation is
// permitted at all (no quotations received yet) is decided by the shipper
// status view, not here.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}

// Expire transitions Open to Expired when the inquiry deadline passes.
func (s Status) Expire() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s))
	}
	return Expired, nil
}

// Close transitions Open to Closed. Closing happens automatically when every
// forwarder has rejected the inquiry; there is no manual close operation.
func (s Status) Close() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to close", s))
	}
	return Closed, nil
}

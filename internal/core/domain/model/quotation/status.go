package quotation

import (
	"fmt"

	"freightmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a forwarder's quotation.
//
// State transitions:
//
//	Draft ──┬──> Submitted ──┬──> Accepted
//	        │                ├──> Rejected
//	        │                ├──> Expired
//	        └────────────────┴──> Withdrawn
//
// Accepted, Rejected, Withdrawn, and Expired are absorbing. The zero value
// (Unknown) doubles as "no quotation exists": the tolerant caster resolves
// absent or unrecognized persisted strings to it, and the forwarder status
// view reads it as the forwarder not having quoted yet.
type Status int

const (
	// Unknown means no quotation, or an unrecognized persisted value.
	Unknown Status = iota

	// Draft is a quotation the forwarder is still editing. A draft can be
	// resumed as long as the inquiry stays open.
	Draft

	// Submitted is a priced offer awaiting the shipper's award decision.
	Submitted

	// Accepted means the shipper awarded the inquiry to this quotation. Final.
	Accepted

	// Rejected means the shipper awarded the inquiry elsewhere. Final.
	Rejected

	// Withdrawn means the forwarder retracted the quotation. Final.
	Withdrawn

	// Expired means the quotation passed its validity date. Final.
	Expired
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown has no persisted form
	return map[Status]string{
		Draft:     "draft",
		Submitted: "submitted",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Withdrawn: "withdrawn",
		Expired:   "expired",
	}
}

// StatusFromString resolves a raw persisted quotation-status string.
// Tolerant: an absent or unrecognized string resolves to Unknown, meaning
// "no quotation" rather than an error.
func StatusFromString(s string) Status {
	for status, str := range getStatusStrings() {
		if str == s {
			return status
		}
	}
	return Unknown
}

// Validate checks that the Status has a persisted form. Unknown is invalid
// for a stored quotation: a quotation row always carries a concrete status.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid quotation status", s))
	}
	return nil
}

// String returns the persisted wire form ("draft", "submitted", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether the status is absorbing.
func (s Status) IsFinal() bool {
	return s == Accepted || s == Rejected || s == Withdrawn || s == Expired
}

// Submit transitions Draft to Submitted.
func (s Status) Submit() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to submit", s))
	}
	return Submitted, nil
}

// Accept transitions Submitted to Accepted when the shipper awards the
// inquiry to this quotation.
func (s Status) Accept() (Status, error) {
	if s != Submitted {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s))
	}
	return Accepted, nil
}

// Reject transitions Submitted to Rejected when the shipper awards the
// inquiry to a different forwarder.
func (s Status) Reject() (Status, error) {
	if s != Submitted {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s))
	}
	return Rejected, nil
}

// Withdraw transitions Draft or Submitted to Withdrawn.
func (s Status) Withdraw() (Status, error) {
	if s != Draft && s != Submitted {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to withdraw", s))
	}
	return Withdrawn, nil
}

// Expire transitions Submitted to Expired when the validity date passes.
func (s Status) Expire() (Status, error) {
	if s != Submitted {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s))
	}
	return Expired, nil
}

package services

import (
	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/quotation"
)

// StatusContext carries the three persisted facts a forwarder's view of an
// inquiry is derived from: the inquiry's own status, the forwarder's
// quotation status (Unknown when no quotation exists), and the forwarder's
// response status (Unknown when no response record exists).
type StatusContext struct {
	InquiryStatus   inquiry.Status
	QuotationStatus quotation.Status
	ResponseStatus  inquiry.ResponseStatus
}

// NewStatusContext builds a StatusContext from raw persisted strings using
// the tolerant casters: an unrecognized inquiry status resolves to draft, an
// absent or unrecognized quotation status to "no quotation", an absent or
// unrecognized response status to "no response". Malformed rows therefore
// produce a safe context, never an error.
func NewStatusContext(inquiryStatus, quotationStatus, responseStatus string) StatusContext {
	return StatusContext{
		InquiryStatus:   inquiry.StatusFromString(inquiryStatus),
		QuotationStatus: quotation.StatusFromString(quotationStatus),
		ResponseStatus:  inquiry.ResponseStatusFromString(responseStatus),
	}
}

// QuotationAction classifies what a forwarder can do about a quotation on an
// inquiry. It is the presentation-free canonical label of action
// availability, ordered by the same precedence the display status uses.
type QuotationAction int

const (
	// ActionInquiryRejected: the inquiry itself, or this forwarder's
	// response to it, is rejected. No quotation activity is possible.
	ActionInquiryRejected QuotationAction = iota

	// ActionQuotationRejected: the forwarder's quotation was rejected.
	ActionQuotationRejected

	// ActionViewQuotation: a binding quotation exists (submitted or
	// accepted); it can be viewed but not edited.
	ActionViewQuotation

	// ActionEditQuotation: a draft quotation exists and can be resumed.
	ActionEditQuotation

	// ActionCreateQuotation: no quotation exists yet.
	ActionCreateQuotation
)

// String returns the canonical label of the action.
func (a QuotationAction) String() string {
	switch a {
	case ActionInquiryRejected:
		return "inquiry_rejected"
	case ActionQuotationRejected:
		return "quotation_rejected"
	case ActionViewQuotation:
		return "view_quotation"
	case ActionEditQuotation:
		return "edit_quotation"
	default:
		return "create_quotation"
	}
}

// ForwarderStatusView is the domain service deriving a forwarder's view of an
// inquiry from a StatusContext. All operations are pure, total, and
// side-effect free; the service carries no state and is safe for concurrent
// use from any number of request handlers.
//
// The crux of the view is precedence: an inquiry-level terminal fact always
// outranks a quotation-level fact, and the forwarder's own rejection outranks
// a generic awarded status.
type ForwarderStatusView struct{}

// NewForwarderStatusView creates a ForwarderStatusView.
func NewForwarderStatusView() ForwarderStatusView {
	return ForwarderStatusView{}
}

// IsRejected reports whether the inquiry is rejected from this forwarder's
// perspective: the inquiry itself, the forwarder's quotation, or the
// forwarder's response is rejected.
func (v ForwarderStatusView) IsRejected(ctx StatusContext) bool {
	return ctx.InquiryStatus == inquiry.Rejected ||
		ctx.QuotationStatus == quotation.Rejected ||
		ctx.ResponseStatus == inquiry.ResponseRejected
}

// IsClosed reports whether the inquiry has reached a state in which no
// forwarder activity is possible anymore.
func (v ForwarderStatusView) IsClosed(ctx StatusContext) bool {
	switch ctx.InquiryStatus {
	case inquiry.Closed, inquiry.Cancelled, inquiry.Expired, inquiry.Awarded:
		return true
	default:
		return false
	}
}

// CanCreateQuotation reports whether the forwarder may create or resume a
// quotation. A forwarder can quote only on an open inquiry, and only while it
// has no quotation or an editable draft; an explicit rejection by either
// party permanently blocks re-quoting.
func (v ForwarderStatusView) CanCreateQuotation(ctx StatusContext) bool {
	switch ctx.InquiryStatus {
	case inquiry.Rejected, inquiry.Closed, inquiry.Cancelled, inquiry.Expired:
		return false
	}
	if ctx.ResponseStatus == inquiry.ResponseRejected {
		return false
	}
	if ctx.QuotationStatus == quotation.Rejected {
		return false
	}

	return ctx.InquiryStatus == inquiry.Open &&
		(ctx.QuotationStatus == quotation.Unknown || ctx.QuotationStatus == quotation.Draft)
}

// CanRejectInquiry reports whether the forwarder may decline the inquiry.
// The same terminal and rejection guards apply as for quoting, and a
// forwarder that already has a non-draft quotation can no longer reject.
func (v ForwarderStatusView) CanRejectInquiry(ctx StatusContext) bool {
	switch ctx.InquiryStatus {
	case inquiry.Rejected, inquiry.Closed, inquiry.Cancelled, inquiry.Expired:
		return false
	}
	if ctx.ResponseStatus == inquiry.ResponseRejected {
		return false
	}
	if ctx.QuotationStatus == quotation.Rejected {
		return false
	}
	if ctx.QuotationStatus != quotation.Unknown && ctx.QuotationStatus != quotation.Draft {
		return false
	}

	return ctx.InquiryStatus == inquiry.Open
}

// DisplayStatus derives the status shown to this forwarder, in priority
// order:
//
//  1. own response rejected: the forwarder declined, everything else is moot
//  2. inquiry awarded: resolved per quotation status. Accepted means this
//     forwarder won, rejected means it lost, anything else means the inquiry
//     closed without this forwarder's participation
//  3. inquiry rejected
//  4. quotation rejected
//  5. the inquiry status as-is
func (v ForwarderStatusView) DisplayStatus(ctx StatusContext) inquiry.Status {
	if ctx.ResponseStatus == inquiry.ResponseRejected {
		return inquiry.Rejected
	}

	if ctx.InquiryStatus == inquiry.Awarded {
		switch ctx.QuotationStatus {
		case quotation.Accepted:
			return inquiry.Awarded
		case quotation.Rejected:
			return inquiry.Rejected
		default:
			return inquiry.Awarded
		}
	}

	if ctx.InquiryStatus == inquiry.Rejected {
		return inquiry.Rejected
	}
	if ctx.QuotationStatus == quotation.Rejected {
		return inquiry.Rejected
	}

	return ctx.InquiryStatus
}

// QuotationAction classifies the forwarder's available quotation action,
// ordered: rejected inquiry, rejected quotation, binding quotation, editable
// draft, then the default of creating a new quotation.
func (v ForwarderStatusView) QuotationAction(ctx StatusContext) QuotationAction {
	if ctx.InquiryStatus == inquiry.Rejected || ctx.ResponseStatus == inquiry.ResponseRejected {
		return ActionInquiryRejected
	}
	if ctx.QuotationStatus == quotation.Rejected {
		return ActionQuotationRejected
	}
	if ctx.QuotationStatus == quotation.Submitted || ctx.QuotationStatus == quotation.Accepted {
		return ActionViewQuotation
	}
	if ctx.QuotationStatus == quotation.Draft {
		return ActionEditQuotation
	}
	return ActionCreateQuotation
}

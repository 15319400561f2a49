package services

import (
	"freightmarket/internal/core/domain/model/inquiry"
)

// ResponseSummary aggregates the forwarder responses of one inquiry.
// Total is the number of forwarders the inquiry was dispatched to.
type ResponseSummary struct {
	Total    int
	Pending  int
	Rejected int
	Quoted   int
}

// ShipperStatusContext carries the facts a shipper's view of an inquiry is
// derived from. Unlike the forwarder view, which looks at one forwarder's
// records, the shipper aggregates across all forwarders on the inquiry.
//
// The inquiry status here uses the shipper vocabulary (draft, open, awarded,
// closed, cancelled, expired); rejected is forwarder-local and never appears.
// ResponseSummary is nil when the dispatch records were not loaded.
type ShipperStatusContext struct {
	InquiryStatus         inquiry.Status
	QuotationCount        int
	HasAcceptedQuotation  bool
	HasRejectedQuotations bool
	ResponseSummary       *ResponseSummary
}

// ShipperDisplayStatus is the status vocabulary shown to a shipper. It is a
// distinct type from the forwarder-facing vocabulary on purpose: the two
// roles interpret the same persisted facts differently, and sharing one
// mutable status object between them invites cross-contamination.
type ShipperDisplayStatus int

const (
	ShipperDisplayUnknown ShipperDisplayStatus = iota
	ShipperDisplayDraft
	ShipperDisplayOpen

	// ShipperDisplayQuoted is derived, not persisted: an open inquiry that
	// has received at least one quotation.
	ShipperDisplayQuoted

	ShipperDisplayAwarded
	ShipperDisplayClosed
	ShipperDisplayCancelled
	ShipperDisplayExpired
)

// String returns the canonical label of the display status.
func (s ShipperDisplayStatus) String() string {
	switch s {
	case ShipperDisplayDraft:
		return "draft"
	case ShipperDisplayOpen:
		return "open"
	case ShipperDisplayQuoted:
		return "quoted"
	case ShipperDisplayAwarded:
		return "awarded"
	case ShipperDisplayClosed:
		return "closed"
	case ShipperDisplayCancelled:
		return "cancelled"
	case ShipperDisplayExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// ShipperStatusView is the domain service deriving a shipper's view of an
// inquiry. All operations are pure and side-effect free.
type ShipperStatusView struct{}

// NewShipperStatusView creates a ShipperStatusView.
func NewShipperStatusView() ShipperStatusView {
	return ShipperStatusView{}
}

// DisplayStatus derives the status shown to the shipper. Draft, awarded, and
// the terminal statuses pass through unchanged. An open inquiry is shown as
// quoted once any quotation arrived, as closed once every dispatched
// forwarder rejected it, and as open otherwise. An inquiry dispatched to no
// forwarder at all stays open, as does one whose dispatch summary was not
// loaded.
func (v ShipperStatusView) DisplayStatus(ctx ShipperStatusContext) ShipperDisplayStatus {
	switch ctx.InquiryStatus {
	case inquiry.Draft:
		return ShipperDisplayDraft
	case inquiry.Awarded:
		return ShipperDisplayAwarded
	case inquiry.Closed:
		return ShipperDisplayClosed
	case inquiry.Cancelled:
		return ShipperDisplayCancelled
	case inquiry.Expired:
		return ShipperDisplayExpired
	case inquiry.Open:
		summary := ctx.ResponseSummary
		if ctx.QuotationCount > 0 || (summary != nil && summary.Quoted > 0) {
			return ShipperDisplayQuoted
		}
		if summary != nil && summary.Total > 0 && summary.Rejected == summary.Total {
			return ShipperDisplayClosed
		}
		return ShipperDisplayOpen
	default:
		return ShipperDisplayOpen
	}
}

// CanCancelInquiry reports whether the shipper may withdraw the inquiry:
// only while it is a draft or still open, and only before any quotation
// arrived.
func (v ShipperStatusView) CanCancelInquiry(ctx ShipperStatusContext) bool {
	if ctx.InquiryStatus != inquiry.Draft && ctx.InquiryStatus != inquiry.Open {
		return false
	}
	return ctx.QuotationCount == 0
}

// CanCloseInquiry always returns false. Closing is automatic only: an
// inquiry closes when every dispatched forwarder rejected it, and there is
// deliberately no manual close operation.
func (v ShipperStatusView) CanCloseInquiry(_ ShipperStatusContext) bool {
	return false
}

// IsFinal reports whether the inquiry has reached one of the absorbing
// shipper-side states: awarded, closed, cancelled, or expired.
func (v ShipperStatusView) IsFinal(ctx ShipperStatusContext) bool {
	return ctx.InquiryStatus.IsFinal()
}

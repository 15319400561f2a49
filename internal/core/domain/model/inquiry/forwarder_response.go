package inquiry

import (
	"errors"
	"fmt"
	"time"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"
)

// ErrForwarderResponseIsNotConstructed is returned when a ForwarderResponse
// was not created through NewForwarderResponse or RestoreForwarderResponse.
var ErrForwarderResponseIsNotConstructed = errors.New(
	"ForwarderResponse must be created via NewForwarderResponse constructor",
)

// ResponseStatus is the per-forwarder reaction to a dispatched inquiry.
//
// State transitions:
//
//	Pending ──┬──> Rejected
//	          └──> Quoted
//
// Rejected is absorbing: once a forwarder has rejected an inquiry it can
// never quote on it again.
type ResponseStatus int

const (
	// ResponseUnknown represents an unrecognized persisted value. The status
	// views treat it like Pending: neither rejected nor quoted.
	ResponseUnknown ResponseStatus = iota

	ResponsePending
	ResponseRejected
	ResponseQuoted
)

func getResponseStatusStrings() map[ResponseStatus]string {
	//nolint:exhaustive // ResponseUnknown has no persisted form
	return map[ResponseStatus]string{
		ResponsePending:  "pending",
		ResponseRejected: "rejected",
		ResponseQuoted:   "quoted",
	}
}

// ResponseStatusFromString resolves a raw persisted response-status string.
// Tolerant: unrecognized input resolves to ResponseUnknown.
func ResponseStatusFromString(s string) ResponseStatus {
	for status, str := range getResponseStatusStrings() {
		if str == s {
			return status
		}
	}
	return ResponseUnknown
}

// Validate checks that the ResponseStatus has a persisted form.
func (s ResponseStatus) Validate() error {
	if _, ok := getResponseStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("responseStatus is invalid",
			fmt.Errorf("%d is not a valid response status", s))
	}
	return nil
}

// String returns the persisted wire form ("pending", "rejected", "quoted").
func (s ResponseStatus) String() string {
	if str, ok := getResponseStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ForwarderResponse records the delivery of one inquiry to one forwarder
// organization and that forwarder's reaction to it. Exactly one response
// exists per (inquiry, forwarder organization) pair; it is created when the
// inquiry is published and mutated only by the owning forwarder's actions.
type ForwarderResponse struct {
	id             kernel.UUID
	inquiryID      kernel.UUID
	forwarderOrgID kernel.UUID
	status         ResponseStatus
	sentAt         time.Time
	viewedAt       *time.Time
	isConstructed  bool
}

// NewForwarderResponse creates a pending response for a freshly dispatched
// inquiry.
func NewForwarderResponse(
	id kernel.UUID,
	inquiryID kernel.UUID,
	forwarderOrgID kernel.UUID,
	sentAt time.Time,
) (*ForwarderResponse, error) {
	if err := errors.Join(id.Validate(), inquiryID.Validate(), forwarderOrgID.Validate()); err != nil {
		return nil, err
	}

	return &ForwarderResponse{
		id:             id,
		inquiryID:      inquiryID,
		forwarderOrgID: forwarderOrgID,
		status:         ResponsePending,
		sentAt:         sentAt,
		isConstructed:  true,
	}, nil
}

// RestoreForwarderResponse reconstructs a response from persistence.
// Used only by repository adapters.
func RestoreForwarderResponse(
	id kernel.UUID,
	inquiryID kernel.UUID,
	forwarderOrgID kernel.UUID,
	status ResponseStatus,
	sentAt time.Time,
	viewedAt *time.Time,
) (*ForwarderResponse, error) {
	response, err := NewForwarderResponse(id, inquiryID, forwarderOrgID, sentAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	response.status = status
	response.viewedAt = viewedAt
	return response, nil
}

// Validate ensures the response was created through a constructor.
func (r *ForwarderResponse) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrForwarderResponseIsNotConstructed
	}
	return nil
}

// ID returns the response's unique identifier.
func (r *ForwarderResponse) ID() kernel.UUID {
	return r.id
}

// InquiryID returns the identifier of the dispatched inquiry.
func (r *ForwarderResponse) InquiryID() kernel.UUID {
	return r.inquiryID
}

// ForwarderOrgID returns the receiving forwarder organization's identifier.
func (r *ForwarderResponse) ForwarderOrgID() kernel.UUID {
	return r.forwarderOrgID
}

// Status returns the forwarder's current reaction.
func (r *ForwarderResponse) Status() ResponseStatus {
	return r.status
}

// SentAt returns when the inquiry was dispatched to the forwarder.
func (r *ForwarderResponse) SentAt() time.Time {
	return r.sentAt
}

// ViewedAt returns when the forwarder first viewed the inquiry, or nil.
func (r *ForwarderResponse) ViewedAt() *time.Time {
	return r.viewedAt
}

// MarkViewed records the first time the forwarder opened the inquiry.
// Subsequent views keep the original timestamp.
func (r *ForwarderResponse) MarkViewed(at time.Time) {
	if r.viewedAt == nil {
		r.viewedAt = &at
	}
}

// Reject records the forwarder's refusal to quote. Valid only from Pending;
// rejection is absorbing and permanently blocks quoting on this inquiry.
func (r *ForwarderResponse) Reject() error {
	if r.status != ResponsePending {
		return errs.NewValueIsInvalidErrorWithCause("responseStatus is invalid",
			fmt.Errorf("%s is not a valid status to reject", r.status))
	}
	r.status = ResponseRejected
	return nil
}

// MarkQuoted records that the forwarder submitted a quotation.
// Valid only from Pending.
func (r *ForwarderResponse) MarkQuoted() error {
	if r.status != ResponsePending {
		return errs.NewValueIsInvalidErrorWithCause("responseStatus is invalid",
			fmt.Errorf("%s is not a valid status to mark quoted", r.status))
	}
	r.status = ResponseQuoted
	return nil
}

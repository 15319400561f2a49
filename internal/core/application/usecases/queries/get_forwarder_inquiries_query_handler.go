package queries

import (
	"context"
	"database/sql"
	"time"

	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetForwarderInquiriesQueryHandler reads the forwarder's inquiry list with
// direct SQL and derives the per-row display status and permitted actions
// through the forwarder status view. The statuses are read as raw strings
// and resolved by the tolerant casters, so a malformed row degrades to a
// safe default instead of failing the whole list.
type GetForwarderInquiriesQueryHandler struct {
	db *gorm.DB
}

// NewGetForwarderInquiriesQueryHandler creates a handler for the
// forwarder's inquiry list.
func NewGetForwarderInquiriesQueryHandler(db *gorm.DB) GetForwarderInquiriesQueryHandler {
	return GetForwarderInquiriesQueryHandler{db: db}
}

// Handle executes the query. Rows are ordered by dispatch time, newest
// first.
func (h GetForwarderInquiriesQueryHandler) Handle(
	ctx context.Context,
	query GetForwarderInquiriesQuery,
) ([]GetForwarderInquiriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	view := services.NewForwarderStatusView()
	responses := make([]GetForwarderInquiriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.service_type,
			i.status,
			COALESCE(q.status, ''),
			r.status,
			r.sent_at,
			r.viewed_at
		FROM inquiries i
		JOIN forwarder_responses r
			ON r.inquiry_id = i.id AND r.forwarder_org_id = ?
		LEFT JOIN quotations q
			ON q.inquiry_id = i.id AND q.forwarder_org_id = ?
		ORDER BY r.sent_at DESC
	`, query.ForwarderOrgID().Bytes(), query.ForwarderOrgID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              uuid.UUID
			serviceType     string
			inquiryStatus   string
			quotationStatus string
			responseStatus  string
			sentAt          time.Time
			viewedAt        sql.NullTime
		)

		if err = rows.Scan(
			&id, &serviceType, &inquiryStatus, &quotationStatus,
			&responseStatus, &sentAt, &viewedAt,
		); err != nil {
			return nil, err
		}

		inquiryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		statusCtx := services.NewStatusContext(inquiryStatus, quotationStatus, responseStatus)

		response := GetForwarderInquiriesQueryResponse{
			InquiryID:          inquiryID,
			ServiceType:        serviceType,
			DisplayStatus:      view.DisplayStatus(statusCtx).String(),
			QuotationAction:    view.QuotationAction(statusCtx).String(),
			CanCreateQuotation: view.CanCreateQuotation(statusCtx),
			CanRejectInquiry:   view.CanRejectInquiry(statusCtx),
			SentAt:             sentAt,
		}
		if viewedAt.Valid {
			t := viewedAt.Time
			response.ViewedAt = &t
		}

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

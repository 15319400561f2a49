package queries

import (
	"context"
	"time"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipperInquiriesQueryHandler reads the shipper's inquiry list with
// direct SQL. Quotation and dispatch counts are aggregated per inquiry in
// the database; the shipper status view then turns the persisted status and
// the counts into the displayed status and the cancel permission.
//
// Draft quotations are excluded from the quotation count: a forwarder's
// unsubmitted draft is invisible to the shipper and must not flip the
// inquiry to quoted or block its cancellation.
type GetShipperInquiriesQueryHandler struct {
	db *gorm.DB
}

// NewGetShipperInquiriesQueryHandler creates a handler for the shipper's
// inquiry list.
func NewGetShipperInquiriesQueryHandler(db *gorm.DB) GetShipperInquiriesQueryHandler {
	return GetShipperInquiriesQueryHandler{db: db}
}

// Handle executes the query. Rows are ordered by creation time, newest
// first.
func (h GetShipperInquiriesQueryHandler) Handle(
	ctx context.Context,
	query GetShipperInquiriesQuery,
) ([]GetShipperInquiriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	view := services.NewShipperStatusView()
	responses := make([]GetShipperInquiriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.service_type,
			i.status,
			i.created_at,
			COALESCE(q.total, 0),
			COALESCE(q.accepted, 0),
			COALESCE(q.rejected, 0),
			COALESCE(r.total, 0),
			COALESCE(r.pending, 0),
			COALESCE(r.rejected, 0),
			COALESCE(r.quoted, 0)
		FROM inquiries i
		LEFT JOIN (
			SELECT
				inquiry_id,
				COUNT(*) FILTER (WHERE status <> 'draft')    AS total,
				COUNT(*) FILTER (WHERE status = 'accepted')  AS accepted,
				COUNT(*) FILTER (WHERE status = 'rejected')  AS rejected
			FROM quotations
			GROUP BY inquiry_id
		) q ON q.inquiry_id = i.id
		LEFT JOIN (
			SELECT
				inquiry_id,
				COUNT(*)                                     AS total,
				COUNT(*) FILTER (WHERE status = 'pending')   AS pending,
				COUNT(*) FILTER (WHERE status = 'rejected')  AS rejected,
				COUNT(*) FILTER (WHERE status = 'quoted')    AS quoted
			FROM forwarder_responses
			GROUP BY inquiry_id
		) r ON r.inquiry_id = i.id
		WHERE i.shipper_org_id = ?
		ORDER BY i.created_at DESC
	`, query.ShipperOrgID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                 uuid.UUID
			serviceType        string
			status             string
			createdAt          time.Time
			quotationCount     int
			acceptedQuotations int
			rejectedQuotations int
			summary            services.ResponseSummary
		)

		if err = rows.Scan(
			&id, &serviceType, &status, &createdAt,
			&quotationCount, &acceptedQuotations, &rejectedQuotations,
			&summary.Total, &summary.Pending, &summary.Rejected, &summary.Quoted,
		); err != nil {
			return nil, err
		}

		inquiryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		statusCtx := services.ShipperStatusContext{
			InquiryStatus:         inquiry.StatusFromString(status),
			QuotationCount:        quotationCount,
			HasAcceptedQuotation:  acceptedQuotations > 0,
			HasRejectedQuotations: rejectedQuotations > 0,
			ResponseSummary:       &summary,
		}

		responses = append(responses, GetShipperInquiriesQueryResponse{
			InquiryID:        inquiryID,
			ServiceType:      serviceType,
			DisplayStatus:    view.DisplayStatus(statusCtx).String(),
			QuotationCount:   quotationCount,
			ForwardersTotal:  summary.Total,
			ResponsesPending: summary.Pending,
			CanCancelInquiry: view.CanCancelInquiry(statusCtx),
			IsFinal:          view.IsFinal(statusCtx),
			CreatedAt:        createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

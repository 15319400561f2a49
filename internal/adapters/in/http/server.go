// Package http provides the Echo-based HTTP adapter. It translates request
// bodies into commands and queries, and domain decisions into status codes:
// quota and permission denials become 403 with the reason verbatim, missing
// objects 404, malformed input 400.
package http

import (
	"errors"
	"net/http"
	"time"

	"freightmarket/internal/core/application/usecases/commands"
	"freightmarket/internal/core/application/usecases/queries"
	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/quotation"
	"freightmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createInquiryHandler     commands.CreateInquiryCommandHandler
	publishInquiryHandler    commands.PublishInquiryCommandHandler
	cancelInquiryHandler     commands.CancelInquiryCommandHandler
	awardInquiryHandler      commands.AwardInquiryCommandHandler
	rejectInquiryHandler     commands.RejectInquiryCommandHandler
	submitQuotationHandler   commands.SubmitQuotationCommandHandler
	requestConnectionHandler commands.RequestConnectionCommandHandler

	getForwarderInquiriesHandler queries.GetForwarderInquiriesQueryHandler
	getShipperInquiriesHandler   queries.GetShipperInquiriesQueryHandler
	getInquiryCargoHandler       queries.GetInquiryCargoQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createInquiryHandler commands.CreateInquiryCommandHandler,
	publishInquiryHandler commands.PublishInquiryCommandHandler,
	cancelInquiryHandler commands.CancelInquiryCommandHandler,
	awardInquiryHandler commands.AwardInquiryCommandHandler,
	rejectInquiryHandler commands.RejectInquiryCommandHandler,
	submitQuotationHandler commands.SubmitQuotationCommandHandler,
	requestConnectionHandler commands.RequestConnectionCommandHandler,
	getForwarderInquiriesHandler queries.GetForwarderInquiriesQueryHandler,
	getShipperInquiriesHandler queries.GetShipperInquiriesQueryHandler,
	getInquiryCargoHandler queries.GetInquiryCargoQueryHandler,
) *Server {
	return &Server{
		createInquiryHandler:         createInquiryHandler,
		publishInquiryHandler:        publishInquiryHandler,
		cancelInquiryHandler:         cancelInquiryHandler,
		awardInquiryHandler:          awardInquiryHandler,
		rejectInquiryHandler:         rejectInquiryHandler,
		submitQuotationHandler:       submitQuotationHandler,
		requestConnectionHandler:     requestConnectionHandler,
		getForwarderInquiriesHandler: getForwarderInquiriesHandler,
		getShipperInquiriesHandler:   getShipperInquiriesHandler,
		getInquiryCargoHandler:       getInquiryCargoHandler,
	}
}

// RegisterRoutes attaches all marketplace routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/inquiries", s.CreateInquiry)
	api.POST("/inquiries/:id/publish", s.PublishInquiry)
	api.POST("/inquiries/:id/cancel", s.CancelInquiry)
	api.POST("/inquiries/:id/award", s.AwardInquiry)
	api.POST("/inquiries/:id/reject", s.RejectInquiry)
	api.GET("/inquiries/:id/cargo", s.GetInquiryCargo)
	api.POST("/quotations", s.SubmitQuotation)
	api.POST("/connections", s.RequestConnection)
	api.GET("/forwarders/:orgId/inquiries", s.GetForwarderInquiries)
	api.GET("/shippers/:orgId/inquiries", s.GetShipperInquiries)
}

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PackageRequest is one cargo line of a new inquiry. Optional measurement
// fields may be omitted.
type PackageRequest struct {
	GrossWeight        float64  `json:"grossWeight"`
	Pieces             int      `json:"pieces"`
	ChargeableWeight   *float64 `json:"chargeableWeight,omitempty"`
	Length             *float64 `json:"length,omitempty"`
	Width              *float64 `json:"width,omitempty"`
	Height             *float64 `json:"height,omitempty"`
	Volume             *float64 `json:"volume,omitempty"`
	DangerousGoods     bool     `json:"dangerousGoods,omitempty"`
	TemperatureControl *string  `json:"temperatureControl,omitempty"`
	SpecialHandling    *string  `json:"specialHandling,omitempty"`
}

// CreateInquiryRequest is the body of POST /api/v1/inquiries.
type CreateInquiryRequest struct {
	ShipperOrgID string           `json:"shipperOrgId"`
	ServiceType  string           `json:"serviceType"`
	Packages     []PackageRequest `json:"packages"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateInquiry handles POST /api/v1/inquiries.
func (s *Server) CreateInquiry(ctx echo.Context) error {
	var request CreateInquiryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipperOrgID, err := kernel.UUIDFromString(request.ShipperOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid shipper organization id: "+err.Error())
	}

	packages := make([]inquiry.Package, 0, len(request.Packages))
	for _, pkgRequest := range request.Packages {
		pkg, pkgErr := toPackage(pkgRequest)
		if pkgErr != nil {
			return badRequest(ctx, "Invalid package: "+pkgErr.Error())
		}
		packages = append(packages, pkg)
	}

	inquiryID := kernel.NewUUID()
	cmd, err := commands.NewCreateInquiryCommand(
		inquiryID, shipperOrgID, inquiry.ServiceTypeFromString(request.ServiceType), packages)
	if err != nil {
		return badRequest(ctx, "Invalid inquiry data: "+err.Error())
	}

	if err = s.createInquiryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: inquiryID.String()})
}

// OwnerRequest identifies the shipper organization acting on its inquiry.
type OwnerRequest struct {
	ShipperOrgID string `json:"shipperOrgId"`
}

// PublishInquiry handles POST /api/v1/inquiries/:id/publish.
func (s *Server) PublishInquiry(ctx echo.Context) error {
	inquiryID, shipperOrgID, ok := bindOwnerRequest(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewPublishInquiryCommand(inquiryID, shipperOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid publish data: "+err.Error())
	}

	if err = s.publishInquiryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelInquiry handles POST /api/v1/inquiries/:id/cancel.
func (s *Server) CancelInquiry(ctx echo.Context) error {
	inquiryID, shipperOrgID, ok := bindOwnerRequest(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelInquiryCommand(inquiryID, shipperOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if err = s.cancelInquiryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AwardInquiryRequest is the body of POST /api/v1/inquiries/:id/award.
type AwardInquiryRequest struct {
	ShipperOrgID string `json:"shipperOrgId"`
	QuotationID  string `json:"quotationId"`
}

// AwardInquiry handles POST /api/v1/inquiries/:id/award.
func (s *Server) AwardInquiry(ctx echo.Context) error {
	inquiryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid inquiry id: "+err.Error())
	}

	var request AwardInquiryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipperOrgID, err := kernel.UUIDFromString(request.ShipperOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid shipper organization id: "+err.Error())
	}

	quotationID, err := kernel.UUIDFromString(request.QuotationID)
	if err != nil {
		return badRequest(ctx, "Invalid quotation id: "+err.Error())
	}

	cmd, err := commands.NewAwardInquiryCommand(inquiryID, shipperOrgID, quotationID)
	if err != nil {
		return badRequest(ctx, "Invalid award data: "+err.Error())
	}

	if err = s.awardInquiryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectInquiryRequest is the body of POST /api/v1/inquiries/:id/reject.
type RejectInquiryRequest struct {
	ForwarderOrgID string `json:"forwarderOrgId"`
}

// RejectInquiry handles POST /api/v1/inquiries/:id/reject.
func (s *Server) RejectInquiry(ctx echo.Context) error {
	inquiryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid inquiry id: "+err.Error())
	}

	var request RejectInquiryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	forwarderOrgID, err := kernel.UUIDFromString(request.ForwarderOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid forwarder organization id: "+err.Error())
	}

	cmd, err := commands.NewRejectInquiryCommand(inquiryID, forwarderOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid reject data: "+err.Error())
	}

	if err = s.rejectInquiryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CostBreakdownRequest carries the four cost segments of a quotation.
type CostBreakdownRequest struct {
	PreCarriage       decimal.Decimal `json:"preCarriage"`
	MainCarriage      decimal.Decimal `json:"mainCarriage"`
	OnCarriage        decimal.Decimal `json:"onCarriage"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"`
	Currency          string          `json:"currency"`
}

// SubmitQuotationRequest is the body of POST /api/v1/quotations.
type SubmitQuotationRequest struct {
	InquiryID      string               `json:"inquiryId"`
	ForwarderOrgID string               `json:"forwarderOrgId"`
	Breakdown      CostBreakdownRequest `json:"breakdown"`
	ValidUntil     time.Time            `json:"validUntil"`
}

// SubmitQuotation handles POST /api/v1/quotations.
func (s *Server) SubmitQuotation(ctx echo.Context) error {
	var request SubmitQuotationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	inquiryID, err := kernel.UUIDFromString(request.InquiryID)
	if err != nil {
		return badRequest(ctx, "Invalid inquiry id: "+err.Error())
	}

	forwarderOrgID, err := kernel.UUIDFromString(request.ForwarderOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid forwarder organization id: "+err.Error())
	}

	breakdown, err := quotation.NewCostBreakdown(
		request.Breakdown.PreCarriage,
		request.Breakdown.MainCarriage,
		request.Breakdown.OnCarriage,
		request.Breakdown.AdditionalCharges,
		request.Breakdown.Currency,
	)
	if err != nil {
		return badRequest(ctx, "Invalid cost breakdown: "+err.Error())
	}

	quotationID := kernel.NewUUID()
	cmd, err := commands.NewSubmitQuotationCommand(
		quotationID, inquiryID, forwarderOrgID, breakdown, request.ValidUntil)
	if err != nil {
		return badRequest(ctx, "Invalid quotation data: "+err.Error())
	}

	if err = s.submitQuotationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: quotationID.String()})
}

// RequestConnectionRequest is the body of POST /api/v1/connections.
type RequestConnectionRequest struct {
	ShipperOrgID   string `json:"shipperOrgId"`
	ForwarderOrgID string `json:"forwarderOrgId"`
}

// RequestConnection handles POST /api/v1/connections.
func (s *Server) RequestConnection(ctx echo.Context) error {
	var request RequestConnectionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipperOrgID, err := kernel.UUIDFromString(request.ShipperOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid shipper organization id: "+err.Error())
	}

	forwarderOrgID, err := kernel.UUIDFromString(request.ForwarderOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid forwarder organization id: "+err.Error())
	}

	connectionID := kernel.NewUUID()
	cmd, err := commands.NewRequestConnectionCommand(connectionID, shipperOrgID, forwarderOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid connection data: "+err.Error())
	}

	if err = s.requestConnectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: connectionID.String()})
}

// ForwarderInquiryResponse is one row of a forwarder's inquiry list.
type ForwarderInquiryResponse struct {
	InquiryID          string     `json:"inquiryId"`
	ServiceType        string     `json:"serviceType"`
	DisplayStatus      string     `json:"displayStatus"`
	QuotationAction    string     `json:"quotationAction"`
	CanCreateQuotation bool       `json:"canCreateQuotation"`
	CanRejectInquiry   bool       `json:"canRejectInquiry"`
	SentAt             time.Time  `json:"sentAt"`
	ViewedAt           *time.Time `json:"viewedAt,omitempty"`
}

// GetForwarderInquiries handles GET /api/v1/forwarders/:orgId/inquiries.
func (s *Server) GetForwarderInquiries(ctx echo.Context) error {
	forwarderOrgID, err := kernel.UUIDFromString(ctx.Param("orgId"))
	if err != nil {
		return badRequest(ctx, "Invalid organization id: "+err.Error())
	}

	query, err := queries.NewGetForwarderInquiriesQuery(forwarderOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.getForwarderInquiriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ForwarderInquiryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, ForwarderInquiryResponse{
			InquiryID:          row.InquiryID.String(),
			ServiceType:        row.ServiceType,
			DisplayStatus:      row.DisplayStatus,
			QuotationAction:    row.QuotationAction,
			CanCreateQuotation: row.CanCreateQuotation,
			CanRejectInquiry:   row.CanRejectInquiry,
			SentAt:             row.SentAt,
			ViewedAt:           row.ViewedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ShipperInquiryResponse is one row of a shipper's inquiry list.
type ShipperInquiryResponse struct {
	InquiryID        string    `json:"inquiryId"`
	ServiceType      string    `json:"serviceType"`
	DisplayStatus    string    `json:"displayStatus"`
	QuotationCount   int       `json:"quotationCount"`
	ForwardersTotal  int       `json:"forwardersTotal"`
	ResponsesPending int       `json:"responsesPending"`
	CanCancelInquiry bool      `json:"canCancelInquiry"`
	IsFinal          bool      `json:"isFinal"`
	CreatedAt        time.Time `json:"createdAt"`
}

// GetShipperInquiries handles GET /api/v1/shippers/:orgId/inquiries.
func (s *Server) GetShipperInquiries(ctx echo.Context) error {
	shipperOrgID, err := kernel.UUIDFromString(ctx.Param("orgId"))
	if err != nil {
		return badRequest(ctx, "Invalid organization id: "+err.Error())
	}

	query, err := queries.NewGetShipperInquiriesQuery(shipperOrgID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.getShipperInquiriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ShipperInquiryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, ShipperInquiryResponse{
			InquiryID:        row.InquiryID.String(),
			ServiceType:      row.ServiceType,
			DisplayStatus:    row.DisplayStatus,
			QuotationCount:   row.QuotationCount,
			ForwardersTotal:  row.ForwardersTotal,
			ResponsesPending: row.ResponsesPending,
			CanCancelInquiry: row.CanCancelInquiry,
			IsFinal:          row.IsFinal,
			CreatedAt:        row.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CargoPackageResponse is one package of a cargo manifest.
type CargoPackageResponse struct {
	GrossWeight      float64 `json:"grossWeight"`
	ChargeableWeight float64 `json:"chargeableWeight"`
	Volume           float64 `json:"volume"`
	Pieces           int     `json:"pieces"`
	DangerousGoods   bool    `json:"dangerousGoods"`
	Temperature      *string `json:"temperature,omitempty"`
	SpecialHandling  *string `json:"specialHandling,omitempty"`
}

// CargoResponse is the body of GET /api/v1/inquiries/:id/cargo.
type CargoResponse struct {
	InquiryID             string                 `json:"inquiryId"`
	ServiceType           string                 `json:"serviceType"`
	Packages              []CargoPackageResponse `json:"packages"`
	TotalGrossWeight      float64                `json:"totalGrossWeight"`
	TotalChargeableWeight float64                `json:"totalChargeableWeight"`
	TotalVolume           float64                `json:"totalVolume"`
	TotalPieces           int                    `json:"totalPieces"`
	HasDangerousGoods     bool                   `json:"hasDangerousGoods"`
	HasTemperatureControl bool                   `json:"hasTemperatureControl"`
	HasSpecialHandling    bool                   `json:"hasSpecialHandling"`
}

// GetInquiryCargo handles GET /api/v1/inquiries/:id/cargo.
func (s *Server) GetInquiryCargo(ctx echo.Context) error {
	inquiryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid inquiry id: "+err.Error())
	}

	query, err := queries.NewGetInquiryCargoQuery(inquiryID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	cargo, err := s.getInquiryCargoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	packages := make([]CargoPackageResponse, 0, len(cargo.Packages))
	for _, pkg := range cargo.Packages {
		packages = append(packages, CargoPackageResponse{
			GrossWeight:      pkg.GrossWeight,
			ChargeableWeight: pkg.ChargeableWeight,
			Volume:           pkg.Volume,
			Pieces:           pkg.Pieces,
			DangerousGoods:   pkg.Dangerous,
			Temperature:      pkg.Temperature,
			SpecialHandling:  pkg.SpecialHandling,
		})
	}

	return ctx.JSON(http.StatusOK, CargoResponse{
		InquiryID:             cargo.InquiryID.String(),
		ServiceType:           cargo.ServiceType,
		Packages:              packages,
		TotalGrossWeight:      cargo.Summary.TotalGrossWeight,
		TotalChargeableWeight: cargo.Summary.TotalChargeableWeight,
		TotalVolume:           cargo.Summary.TotalVolume,
		TotalPieces:           cargo.Summary.TotalPieces,
		HasDangerousGoods:     cargo.Summary.HasDangerousGoods,
		HasTemperatureControl: cargo.Summary.HasTemperatureControl,
		HasSpecialHandling:    cargo.Summary.HasSpecialHandling,
	})
}

func toPackage(request PackageRequest) (inquiry.Package, error) {
	opts := make([]inquiry.PackageOption, 0, 5)
	if request.ChargeableWeight != nil {
		opts = append(opts, inquiry.WithChargeableWeight(*request.ChargeableWeight))
	}
	if request.Length != nil && request.Width != nil && request.Height != nil {
		opts = append(opts, inquiry.WithDimensions(*request.Length, *request.Width, *request.Height))
	}
	if request.Volume != nil {
		opts = append(opts, inquiry.WithVolume(*request.Volume))
	}
	if request.DangerousGoods {
		opts = append(opts, inquiry.WithDangerousGoods())
	}
	if request.TemperatureControl != nil {
		opts = append(opts, inquiry.WithTemperatureControl(*request.TemperatureControl))
	}
	if request.SpecialHandling != nil {
		opts = append(opts, inquiry.WithSpecialHandling(*request.SpecialHandling))
	}

	return inquiry.NewPackage(request.GrossWeight, request.Pieces, opts...)
}

// bindOwnerRequest extracts the inquiry id and the acting shipper
// organization. On failure the 400 response has already been written and ok
// is false.
func bindOwnerRequest(ctx echo.Context) (inquiryID, shipperOrgID kernel.UUID, ok bool) {
	inquiryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		_ = badRequest(ctx, "Invalid inquiry id: "+err.Error())
		return kernel.UUID{}, kernel.UUID{}, false
	}

	var request OwnerRequest
	if err = ctx.Bind(&request); err != nil {
		_ = badRequest(ctx, "Invalid request body")
		return kernel.UUID{}, kernel.UUID{}, false
	}

	shipperOrgID, err = kernel.UUIDFromString(request.ShipperOrgID)
	if err != nil {
		_ = badRequest(ctx, "Invalid shipper organization id: "+err.Error())
		return kernel.UUID{}, kernel.UUID{}, false
	}

	return inquiryID, shipperOrgID, true
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates handler errors into HTTP responses. Forbidden-class
// decisions carry their reason to the client verbatim; everything
// unexpected collapses to an opaque 500.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrQuotaExceeded),
		errors.Is(err, commands.ErrNotInquiryOwner),
		errors.Is(err, commands.ErrQuotationNotPermitted),
		errors.Is(err, commands.ErrRejectionNotPermitted),
		errors.Is(err, commands.ErrCancellationNotPermitted):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrQuotationInquiryMismatch):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

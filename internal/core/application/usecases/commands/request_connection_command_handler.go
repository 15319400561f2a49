package commands

import (
	"context"
	"fmt"

	"freightmarket/internal/core/domain/model/connection"
	"freightmarket/internal/core/domain/services"
)

// RequestConnectionCommandHandler establishes a pending connection between a
// shipper and a forwarder organization. Both sides' connection quotas are
// checked: the basic tier holds at most one connection per role, so either
// organization being at its limit blocks the request.
type RequestConnectionCommandHandler struct {
	uowFactory UoWFactory
}

// NewRequestConnectionCommandHandler creates a handler for connection
// requests.
func NewRequestConnectionCommandHandler(uowFactory UoWFactory) RequestConnectionCommandHandler {
	return RequestConnectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the connection request. Returns ErrQuotaExceeded (with
// the quota reason) when either organization's connection limit is reached.
func (h RequestConnectionCommandHandler) Handle(ctx context.Context, cmd RequestConnectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	conn, err := connection.NewConnection(cmd.ConnectionID(), cmd.ShipperOrgID(), cmd.ForwarderOrgID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quotaGuard := services.NewQuotaGuard(
		uow.SubscriptionRepository(),
		uow.QuotationRepository(),
		uow.ConnectionRepository(),
	)

	decision, err := quotaGuard.CheckConnectionLimit(ctx, cmd.ShipperOrgID(), connection.RoleShipper, nil)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, decision.Reason)
	}

	decision, err = quotaGuard.CheckConnectionLimit(ctx, cmd.ForwarderOrgID(), connection.RoleForwarder, nil)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, decision.Reason)
	}

	if err = uow.ConnectionRepository().Add(ctx, conn); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

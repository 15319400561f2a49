package commands_test

import (
	"context"
	"time"

	"freightmarket/internal/core/application/usecases/commands"
	"freightmarket/internal/core/domain/model/connection"
	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/core/domain/model/quotation"
	"freightmarket/internal/core/domain/model/subscription"
	"freightmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockInquiryRepository struct{ mock.Mock }

func (m *MockInquiryRepository) Add(ctx context.Context, aggregate *inquiry.Inquiry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockInquiryRepository) Update(ctx context.Context, aggregate *inquiry.Inquiry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockInquiryRepository) Get(ctx context.Context, id kernel.UUID) (*inquiry.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiry.Inquiry), args.Error(1)
}
func (m *MockInquiryRepository) GetAllOpen(ctx context.Context) ([]*inquiry.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inquiry.Inquiry), args.Error(1)
}
func (m *MockInquiryRepository) AddResponse(ctx context.Context, response *inquiry.ForwarderResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}
func (m *MockInquiryRepository) UpdateResponse(ctx context.Context, response *inquiry.ForwarderResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}
func (m *MockInquiryRepository) GetResponse(
	ctx context.Context, inquiryID, forwarderOrgID kernel.UUID,
) (*inquiry.ForwarderResponse, error) {
	args := m.Called(ctx, inquiryID, forwarderOrgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiry.ForwarderResponse), args.Error(1)
}
func (m *MockInquiryRepository) GetResponses(
	ctx context.Context, inquiryID kernel.UUID,
) ([]*inquiry.ForwarderResponse, error) {
	args := m.Called(ctx, inquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inquiry.ForwarderResponse), args.Error(1)
}

type MockQuotationRepository struct{ mock.Mock }

func (m *MockQuotationRepository) Add(ctx context.Context, aggregate *quotation.Quotation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockQuotationRepository) Update(ctx context.Context, aggregate *quotation.Quotation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockQuotationRepository) Get(ctx context.Context, id kernel.UUID) (*quotation.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotation.Quotation), args.Error(1)
}
func (m *MockQuotationRepository) GetByInquiryAndForwarder(
	ctx context.Context, inquiryID, forwarderOrgID kernel.UUID,
) (*quotation.Quotation, error) {
	args := m.Called(ctx, inquiryID, forwarderOrgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotation.Quotation), args.Error(1)
}
func (m *MockQuotationRepository) GetAllByInquiry(
	ctx context.Context, inquiryID kernel.UUID,
) ([]*quotation.Quotation, error) {
	args := m.Called(ctx, inquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quotation.Quotation), args.Error(1)
}
func (m *MockQuotationRepository) GetAllSubmittedExpired(
	ctx context.Context, now time.Time,
) ([]*quotation.Quotation, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quotation.Quotation), args.Error(1)
}
func (m *MockQuotationRepository) CountByForwarderSince(
	ctx context.Context, forwarderOrgID kernel.UUID, since time.Time,
) (int64, error) {
	args := m.Called(ctx, forwarderOrgID, since)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) GetOrCreate(
	ctx context.Context, organizationID kernel.UUID,
) (*subscription.Subscription, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}
func (m *MockSubscriptionRepository) Update(ctx context.Context, aggregate *subscription.Subscription) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockConnectionRepository struct{ mock.Mock }

func (m *MockConnectionRepository) Add(ctx context.Context, aggregate *connection.Connection) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockConnectionRepository) Update(ctx context.Context, aggregate *connection.Connection) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockConnectionRepository) Get(ctx context.Context, id kernel.UUID) (*connection.Connection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*connection.Connection), args.Error(1)
}
func (m *MockConnectionRepository) GetConnectedForwarders(
	ctx context.Context, shipperOrgID kernel.UUID,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, shipperOrgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}
func (m *MockConnectionRepository) CountActiveByOrganization(
	ctx context.Context, organizationID kernel.UUID, role connection.Role, excludeID *kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, organizationID, role, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW implements the full cross-aggregate unit of work.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) InquiryRepository() ports.InquiryRepository {
	args := m.Called()
	return args.Get(0).(ports.InquiryRepository)
}
func (m *MockUoW) QuotationRepository() ports.QuotationRepository {
	args := m.Called()
	return args.Get(0).(ports.QuotationRepository)
}
func (m *MockUoW) SubscriptionRepository() ports.SubscriptionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubscriptionRepository)
}
func (m *MockUoW) ConnectionRepository() ports.ConnectionRepository {
	args := m.Called()
	return args.Get(0).(ports.ConnectionRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockInquiryUoWFactory struct{ mock.Mock }

func (m *MockInquiryUoWFactory) Create() commands.InquiryUoW {
	args := m.Called()
	return args.Get(0).(commands.InquiryUoW)
}

type MockQuotationUoWFactory struct{ mock.Mock }

func (m *MockQuotationUoWFactory) Create() commands.QuotationUoW {
	args := m.Called()
	return args.Get(0).(commands.QuotationUoW)
}

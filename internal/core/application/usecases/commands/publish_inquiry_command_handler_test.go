package commands_test

import (
	"testing"

	"freightmarket/internal/core/application/usecases/commands"
	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func draftInquiry(t *testing.T, id, shipperOrgID kernel.UUID) *inquiry.Inquiry {
	t.Helper()
	pkg, err := inquiry.NewPackage(100, 1)
	require.NoError(t, err)
	inq, err := inquiry.NewInquiry(id, shipperOrgID, inquiry.SeaFreight, []inquiry.Package{pkg})
	require.NoError(t, err)
	return inq
}

func TestPublishInquiryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	inquiryID := kernel.NewUUID()
	shipperOrgID := kernel.NewUUID()

	cmd, err := commands.NewPublishInquiryCommand(inquiryID, shipperOrgID)
	require.NoError(t, err)

	inq := draftInquiry(t, inquiryID, shipperOrgID)
	forwarders := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	inquiryRepo := new(MockInquiryRepository)
	inquiryRepo.On("Get", ctx, inquiryID).Return(inq, nil).Once()
	inquiryRepo.On("AddResponse", ctx, mock.AnythingOfType("*inquiry.ForwarderResponse")).
		Run(func(args mock.Arguments) {
			response := args.Get(1).(*inquiry.ForwarderResponse)
			assert.Equal(t, inquiry.ResponsePending, response.Status())
			assert.True(t, response.InquiryID().IsEqual(inquiryID))
		}).Return(nil).Times(2)
	inquiryRepo.On("Update", ctx, inq).Return(nil).Once()

	connectionRepo := new(MockConnectionRepository)
	connectionRepo.On("GetConnectedForwarders", ctx, shipperOrgID).
		Return(forwarders, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InquiryRepository").Return(inquiryRepo)
	uow.On("ConnectionRepository").Return(connectionRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishInquiryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, inquiry.Open, inq.Status())
	inquiryRepo.AssertExpectations(t)
	connectionRepo.AssertExpectations(t)
}

func TestPublishInquiryCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	inquiryID := kernel.NewUUID()

	cmd, err := commands.NewPublishInquiryCommand(inquiryID, kernel.NewUUID())
	require.NoError(t, err)

	inq := draftInquiry(t, inquiryID, kernel.NewUUID())

	inquiryRepo := new(MockInquiryRepository)
	inquiryRepo.On("Get", ctx, inquiryID).Return(inq, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InquiryRepository").Return(inquiryRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishInquiryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNotInquiryOwner)
	assert.Equal(t, inquiry.Draft, inq.Status())
}

func TestPublishInquiryCommandHandler_Handle_AlreadyOpen(t *testing.T) {
	ctx := t.Context()
	inquiryID := kernel.NewUUID()
	shipperOrgID := kernel.NewUUID()

	cmd, err := commands.NewPublishInquiryCommand(inquiryID, shipperOrgID)
	require.NoError(t, err)

	inq := openInquiry(t, inquiryID, shipperOrgID)

	inquiryRepo := new(MockInquiryRepository)
	inquiryRepo.On("Get", ctx, inquiryID).Return(inq, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InquiryRepository").Return(inquiryRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishInquiryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

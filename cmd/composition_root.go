package cmd

import (
	"freightmarket/internal/adapters/out/postgres"
	"freightmarket/internal/core/application/usecases/commands"
	"freightmarket/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateInquiryCommandHandler() commands.CreateInquiryCommandHandler {
	var f commands.InquiryUoWFactory = FuncInquiryUoWFactory(func() commands.InquiryUoW {
		return c.uowFactory.CreateUnitOfWork()
	})
	return commands.NewCreateInquiryCommandHandler(f)
}

func (c *CompositionRoot) CreatePublishInquiryCommandHandler() commands.PublishInquiryCommandHandler {
	return commands.NewPublishInquiryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCancelInquiryCommandHandler() commands.CancelInquiryCommandHandler {
	return commands.NewCancelInquiryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAwardInquiryCommandHandler() commands.AwardInquiryCommandHandler {
	return commands.NewAwardInquiryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRejectInquiryCommandHandler() commands.RejectInquiryCommandHandler {
	return commands.NewRejectInquiryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateSubmitQuotationCommandHandler() commands.SubmitQuotationCommandHandler {
	return commands.NewSubmitQuotationCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRequestConnectionCommandHandler() commands.RequestConnectionCommandHandler {
	return commands.NewRequestConnectionCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateExpireQuotationsCommandHandler() commands.ExpireQuotationsCommandHandler {
	var f commands.QuotationUoWFactory = FuncQuotationUoWFactory(func() commands.QuotationUoW {
		return c.uowFactory.CreateUnitOfWork()
	})
	return commands.NewExpireQuotationsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetForwarderInquiriesQueryHandler() queries.GetForwarderInquiriesQueryHandler {
	return queries.NewGetForwarderInquiriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipperInquiriesQueryHandler() queries.GetShipperInquiriesQueryHandler {
	return queries.NewGetShipperInquiriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInquiryCargoQueryHandler() queries.GetInquiryCargoQueryHandler {
	return queries.NewGetInquiryCargoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateUnitOfWork()
	})
}

type FuncInquiryUoWFactory func() commands.InquiryUoW

func (f FuncInquiryUoWFactory) Create() commands.InquiryUoW {
	return f()
}

type FuncQuotationUoWFactory func() commands.QuotationUoW

func (f FuncQuotationUoWFactory) Create() commands.QuotationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package cmd

import (
	"math/rand"
	"time"

	"canteen/internal/adapters/out/postgres"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	selector   services.CourierSelector
	window     time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	epsilon := config.AssignmentEpsilon
	if epsilon == 0 {
		epsilon = services.DefaultEpsilon
	}

	selector, err := services.NewCourierSelector(
		epsilon,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	if err != nil {
		panic(err)
	}

	window := commands.DefaultFairnessWindow
	if config.AssignmentWindowDays > 0 {
		window = time.Duration(config.AssignmentWindowDays) * 24 * time.Hour
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		selector:   selector,
		window:     window,
	}
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})

	handler, err := commands.NewCreateCourierCommandHandler(f)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateSetCourierStatusCommandHandler() commands.SetCourierStatusCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})

	handler, err := commands.NewSetCourierStatusCommandHandler(f)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})

	handler, err := commands.NewPlaceOrderCommandHandler(f)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreatePromotePendingOrdersCommandHandler() commands.PromotePendingOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})

	handler, err := commands.NewPromotePendingOrdersCommandHandler(f)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateUpdateSessionStatusCommandHandler() commands.UpdateSessionStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})

	handler, err := commands.NewUpdateSessionStatusCommandHandler(f)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateAssignSessionCommandHandler() commands.AssignSessionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})

	handler, err := commands.NewAssignSessionCommandHandler(f, c.selector, c.window)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})

	handler, err := commands.NewCompleteDeliveryCommandHandler(f)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateSubmitDeliveryRatingCommandHandler() commands.SubmitDeliveryRatingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})

	handler, err := commands.NewSubmitDeliveryRatingCommandHandler(f)
	if err != nil {
		panic(err)
	}
	return handler
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSessionsQueryHandler() queries.GetOrderSessionsQueryHandler {
	return queries.NewGetOrderSessionsQueryHandler(c.gormDB)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

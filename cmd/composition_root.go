package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"stowage/internal/adapters/in/http"
	"stowage/internal/adapters/out/postgres"
	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/application/usecases/queries"
	"stowage/internal/core/domain/services"
	"stowage/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) itemUoW() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRecommendPlacementsCommandHandler() (commands.RecommendPlacementsCommandHandler, error) {
	strategy, err := c.config.Placement.SelectionStrategy()
	if err != nil {
		return commands.RecommendPlacementsCommandHandler{}, err
	}
	return commands.NewRecommendPlacementsCommandHandler(c.uow(), services.NewPlacementEngine(strategy)), nil
}

func (c *CompositionRoot) CreatePlaceItemCommandHandler() commands.PlaceItemCommandHandler {
	return commands.NewPlaceItemCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRetrieveItemCommandHandler() commands.RetrieveItemCommandHandler {
	return commands.NewRetrieveItemCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateIdentifyWasteCommandHandler() commands.IdentifyWasteCommandHandler {
	return commands.NewIdentifyWasteCommandHandler(c.itemUoW())
}

func (c *CompositionRoot) CreateCreateReturnPlanCommandHandler() commands.CreateReturnPlanCommandHandler {
	return commands.NewCreateReturnPlanCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCompleteUndockingCommandHandler() commands.CompleteUndockingCommandHandler {
	return commands.NewCompleteUndockingCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSimulateDaysCommandHandler() commands.SimulateDaysCommandHandler {
	return commands.NewSimulateDaysCommandHandler(c.itemUoW())
}

func (c *CompositionRoot) CreateSearchItemQueryHandler() queries.SearchItemQueryHandler {
	return queries.NewSearchItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWasteItemsQueryHandler() queries.GetWasteItemsQueryHandler {
	return queries.NewGetWasteItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePlanRearrangementQueryHandler() queries.PlanRearrangementQueryHandler {
	return queries.NewPlanRearrangementQueryHandler(c.uowFactory, services.NewRearrangementPlanner(c.config.Rearrangement))
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() (*http.Server, error) {
	recommend, err := c.CreateRecommendPlacementsCommandHandler()
	if err != nil {
		return nil, err
	}

	return http.NewServer(http.UseCases{
		RecommendPlacements: recommend,
		PlaceItem:           c.CreatePlaceItemCommandHandler(),
		RetrieveItem:        c.CreateRetrieveItemCommandHandler(),
		IdentifyWaste:       c.CreateIdentifyWasteCommandHandler(),
		CreateReturnPlan:    c.CreateCreateReturnPlanCommandHandler(),
		CompleteUndocking:   c.CreateCompleteUndockingCommandHandler(),
		SimulateDays:        c.CreateSimulateDaysCommandHandler(),
		SearchItem:          c.CreateSearchItemQueryHandler(),
		GetWasteItems:       c.CreateGetWasteItemsQueryHandler(),
		PlanRearrangement:   c.CreatePlanRearrangementQueryHandler(),
	}, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateIdentifyWasteCommandHandler(), c.config.WasteInspectionSchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

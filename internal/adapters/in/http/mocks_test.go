package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/application/usecases/queries"
	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/services"
)

type MockPlacementRecommender struct{ mock.Mock }

func (m *MockPlacementRecommender) Handle(
	ctx context.Context,
	cmd commands.RecommendPlacementsCommand,
) (commands.RecommendPlacementsResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RecommendPlacementsResult), args.Error(1)
}

type MockItemPlacer struct{ mock.Mock }

func (m *MockItemPlacer) Handle(ctx context.Context, cmd commands.PlaceItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockItemRetriever struct{ mock.Mock }

func (m *MockItemRetriever) Handle(ctx context.Context, cmd commands.RetrieveItemCommand) (commands.RetrieveItemResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RetrieveItemResult), args.Error(1)
}

type MockWasteIdentifier struct{ mock.Mock }

func (m *MockWasteIdentifier) Handle(ctx context.Context, cmd commands.IdentifyWasteCommand) ([]services.WasteFinding, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.WasteFinding), args.Error(1)
}

type MockReturnPlanner struct{ mock.Mock }

func (m *MockReturnPlanner) Handle(ctx context.Context, cmd commands.CreateReturnPlanCommand) (*plan.ReturnManifest, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.ReturnManifest), args.Error(1)
}

type MockUndockingCompleter struct{ mock.Mock }

func (m *MockUndockingCompleter) Handle(ctx context.Context, cmd commands.CompleteUndockingCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockDaySimulator struct{ mock.Mock }

func (m *MockDaySimulator) Handle(ctx context.Context, cmd commands.SimulateDaysCommand) (commands.SimulationResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SimulationResult), args.Error(1)
}

type MockItemSearcher struct{ mock.Mock }

func (m *MockItemSearcher) Handle(ctx context.Context, query queries.SearchItemQuery) (queries.SearchItemResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.SearchItemResponse), args.Error(1)
}

type MockWasteLister struct{ mock.Mock }

func (m *MockWasteLister) Handle(ctx context.Context, query queries.GetWasteItemsQuery) ([]queries.GetWasteItemsResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetWasteItemsResponse), args.Error(1)
}

type MockRearrangementAdvisor struct{ mock.Mock }

func (m *MockRearrangementAdvisor) Handle(ctx context.Context, query queries.PlanRearrangementQuery) (*plan.RearrangementPlan, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.RearrangementPlan), args.Error(1)
}

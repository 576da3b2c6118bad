// Package http exposes the stowage use cases as a JSON REST API on echo.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/application/usecases/queries"
	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/services"
	"stowage/internal/generated/servers"
)

type (
	PlacementRecommender interface {
		Handle(ctx context.Context, cmd commands.RecommendPlacementsCommand) (commands.RecommendPlacementsResult, error)
	}

	ItemPlacer interface {
		Handle(ctx context.Context, cmd commands.PlaceItemCommand) error
	}

	ItemRetriever interface {
		Handle(ctx context.Context, cmd commands.RetrieveItemCommand) (commands.RetrieveItemResult, error)
	}

	WasteIdentifier interface {
		Handle(ctx context.Context, cmd commands.IdentifyWasteCommand) ([]services.WasteFinding, error)
	}

	ReturnPlanner interface {
		Handle(ctx context.Context, cmd commands.CreateReturnPlanCommand) (*plan.ReturnManifest, error)
	}

	UndockingCompleter interface {
		Handle(ctx context.Context, cmd commands.CompleteUndockingCommand) (int, error)
	}

	DaySimulator interface {
		Handle(ctx context.Context, cmd commands.SimulateDaysCommand) (commands.SimulationResult, error)
	}

	ItemSearcher interface {
		Handle(ctx context.Context, query queries.SearchItemQuery) (queries.SearchItemResponse, error)
	}

	WasteLister interface {
		Handle(ctx context.Context, query queries.GetWasteItemsQuery) ([]queries.GetWasteItemsResponse, error)
	}

	RearrangementAdvisor interface {
		Handle(ctx context.Context, query queries.PlanRearrangementQuery) (*plan.RearrangementPlan, error)
	}
)

// UseCases bundles the handlers behind the routes.
type UseCases struct {
	RecommendPlacements PlacementRecommender
	PlaceItem           ItemPlacer
	RetrieveItem        ItemRetriever
	IdentifyWaste       WasteIdentifier
	CreateReturnPlan    ReturnPlanner
	CompleteUndocking   UndockingCompleter
	SimulateDays        DaySimulator
	SearchItem          ItemSearcher
	GetWasteItems       WasteLister
	PlanRearrangement   RearrangementAdvisor
}

// Server adapts HTTP requests to use case calls. It implements the generated
// servers.ServerInterface.
type Server struct {
	useCases UseCases
	logger   *slog.Logger
	now      func() time.Time
}

func NewServer(useCases UseCases, logger *slog.Logger) *Server {
	return &Server{
		useCases: useCases,
		logger:   logger.With("component", "http_server"),
		now:      time.Now,
	}
}

// WithClock replaces the time source used for retrievals and simulations.
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

// RegisterRoutes mounts the API operations on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	servers.RegisterHandlers(e, s)
}

// NewEcho builds an echo instance with recovery, request logging, OpenAPI
// request validation, the Swagger UI under /swagger/ and the API routes.
func NewEcho(s *Server) (*echo.Echo, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	validator, err := s.RequestValidator(spec)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}

	docs, err := SwaggerHandler(spec)
	if err != nil {
		return nil, fmt.Errorf("build swagger ui: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(RequestLogger(s.logger))
	e.Use(Recover())
	e.Use(validator)
	e.GET("/swagger/*", docs)
	s.RegisterRoutes(e)
	return e, nil
}

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/application/usecases/queries"
	"stowage/internal/core/domain/model/plan"
	"stowage/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid request body", errBadRequest)
	}
	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// RecommendPlacements handles POST /api/placement.
func (s *Server) RecommendPlacements(c echo.Context) error {
	var req servers.RecommendPlacementsJSONRequestBody
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		expiry, err := parseOptionalDate("expiryDate", it.ExpiryDate)
		if err != nil {
			return s.fail(c, err)
		}
		items = append(items, commands.ItemInput{
			ID:            it.ItemId,
			Name:          it.Name,
			Width:         it.Width,
			Depth:         it.Depth,
			Height:        it.Height,
			Mass:          it.Mass,
			Priority:      it.Priority,
			PreferredZone: it.PreferredZone,
			ExpiryDate:    expiry,
			UsageLimit:    it.UsageLimit,
		})
	}

	containerInputs := value(req.Containers)
	containers := make([]commands.ContainerInput, 0, len(containerInputs))
	for _, ct := range containerInputs {
		containers = append(containers, commands.ContainerInput{
			ID:     ct.ContainerId,
			Zone:   ct.Zone,
			Width:  ct.Width,
			Depth:  ct.Depth,
			Height: ct.Height,
		})
	}

	cmd, err := commands.NewRecommendPlacementsCommand(items, containers)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.useCases.RecommendPlacements.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	resp := servers.PlacementResponse{
		Success:        true,
		Placements:     make([]servers.Placement, 0, len(result.Placements)),
		Rearrangements: make([]servers.ItemMessage, 0, len(result.Unplaceable)),
		Rejected:       make([]servers.ItemMessage, 0, len(result.Rejected)),
	}
	for _, p := range result.Placements {
		resp.Placements = append(resp.Placements, servers.Placement{
			ItemId:      p.ItemID(),
			ContainerId: p.ContainerID(),
			Position:    positionFromDomain(p.Start(), p.End()),
		})
	}
	for _, u := range result.Unplaceable {
		resp.Rearrangements = append(resp.Rearrangements, servers.ItemMessage{ItemId: u.ItemID, Message: u.Message})
	}
	for _, r := range result.Rejected {
		resp.Rejected = append(resp.Rejected, servers.ItemMessage{ItemId: r.ItemID, Message: r.Err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

// SearchItem handles GET /api/search?itemId=&itemName=.
func (s *Server) SearchItem(c echo.Context, params servers.SearchItemParams) error {
	query, err := queries.NewSearchItemQuery(value(params.ItemId), value(params.ItemName))
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.useCases.SearchItem.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	if !result.Found {
		return c.JSON(http.StatusOK, servers.SearchResponse{Success: true, Found: false})
	}

	resp := servers.SearchResponse{
		Success: true,
		Found:   true,
		Item: &servers.FoundItem{
			ItemId:      result.ItemID,
			Name:        result.Name,
			ContainerId: result.ContainerID,
			Zone:        result.Zone,
			Position:    positionFromDomain(result.Start, result.End),
			IsWaste:     result.IsWaste,
		},
		RetrievalSteps: result.RetrievalSteps,
	}
	if len(result.Instructions) > 0 {
		resp.Instructions = &result.Instructions
	}

	return c.JSON(http.StatusOK, resp)
}

// RetrieveItem handles POST /api/retrieve.
func (s *Server) RetrieveItem(c echo.Context) error {
	var req servers.RetrieveItemJSONRequestBody
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	at, err := parseTime("timestamp", value(req.Timestamp), s.now())
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRetrieveItemCommand(req.ItemId, req.UserId, at)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.useCases.RetrieveItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.logger.InfoContext(c.Request().Context(), "item retrieved",
		"item_id", req.ItemId, "user_id", req.UserId, "steps", result.Steps)

	return c.JSON(http.StatusOK, servers.RetrieveResponse{
		Success:       true,
		Message:       fmt.Sprintf("Item %s retrieved successfully", result.ItemName),
		Steps:         result.Steps,
		RemainingUses: result.RemainingUses,
		BecameWaste:   result.BecameWaste,
	})
}

// PlaceItem handles POST /api/place.
func (s *Server) PlaceItem(c echo.Context) error {
	var req servers.PlaceItemJSONRequestBody
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewPlaceItemCommand(
		req.ItemId,
		req.ContainerId,
		coordinatesToDomain(req.Position.StartCoordinates),
		coordinatesToDomain(req.Position.EndCoordinates),
		req.UserId,
	)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.useCases.PlaceItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	s.logger.InfoContext(c.Request().Context(), "item placed",
		"item_id", req.ItemId, "container_id", req.ContainerId, "user_id", req.UserId)

	return c.JSON(http.StatusOK, servers.SuccessResponse{Success: true, Message: optional("Item placed successfully")})
}

// IdentifyWaste handles GET /api/waste/identify: flags new waste, then lists all of it.
func (s *Server) IdentifyWaste(c echo.Context) error {
	cmd, err := commands.NewIdentifyWasteCommand(s.now())
	if err != nil {
		return s.fail(c, err)
	}

	findings, err := s.useCases.IdentifyWaste.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	items, err := s.wasteItems(c)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.WasteResponse{Success: true, WasteItems: items, NewlyIdentified: len(findings)})
}

// GetWasteItems handles GET /api/waste/items.
func (s *Server) GetWasteItems(c echo.Context) error {
	items, err := s.wasteItems(c)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.WasteResponse{Success: true, WasteItems: items})
}

func (s *Server) wasteItems(c echo.Context) ([]servers.WasteItem, error) {
	result, err := s.useCases.GetWasteItems.Handle(c.Request().Context(), queries.NewGetWasteItemsQuery())
	if err != nil {
		return nil, err
	}

	items := make([]servers.WasteItem, 0, len(result))
	for _, w := range result {
		item := servers.WasteItem{
			ItemId:   w.ItemID,
			Name:     w.Name,
			Reason:   w.Reason,
			MarkedAt: w.MarkedAt,
			Volume:   w.Volume,
			Mass:     w.Mass,
		}
		if w.Position != nil {
			position := positionFromDomain(w.Position.Start, w.Position.End)
			item.ContainerId = optional(w.Position.ContainerID)
			item.Position = &position
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateReturnPlan handles POST /api/waste/return-plan.
func (s *Server) CreateReturnPlan(c echo.Context) error {
	var req servers.CreateReturnPlanJSONRequestBody
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	date, err := parseTime("undockingDate", req.UndockingDate, time.Time{})
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateReturnPlanCommand(req.UndockingContainerId, date, req.MaxWeight)
	if err != nil {
		return s.fail(c, err)
	}

	manifest, err := s.useCases.CreateReturnPlan.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, returnPlanResponseFromDomain(manifest))
}

func returnPlanResponseFromDomain(m *plan.ReturnManifest) servers.ReturnPlanResponse {
	items := make([]servers.ReturnItem, 0, len(m.Items()))
	for _, it := range m.Items() {
		items = append(items, servers.ReturnItem{
			ItemId:        it.ItemID,
			Name:          it.Name,
			Reason:        it.Reason.String(),
			FromContainer: optional(it.FromContainer),
			Volume:        it.Volume,
			Mass:          it.Mass,
		})
	}

	return servers.ReturnPlanResponse{
		Success: true,
		ReturnPlan: servers.ReturnPlan{
			PlanId:        m.ID(),
			ItemsToReturn: len(items),
			TotalVolume:   m.TotalVolume(),
			TotalWeight:   m.TotalMass(),
		},
		ReturnManifest: servers.ReturnManifest{
			UndockingContainerId: m.UndockingContainerID(),
			UndockingDate:        openapi_types.Date{Time: m.UndockingDate()},
			ReturnItems:          items,
			TotalVolume:          m.TotalVolume(),
			TotalWeight:          m.TotalMass(),
		},
	}
}

// CompleteUndocking handles POST /api/waste/complete-undocking.
func (s *Server) CompleteUndocking(c echo.Context) error {
	var req servers.CompleteUndockingJSONRequestBody
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	at, err := parseTime("timestamp", value(req.Timestamp), s.now())
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCompleteUndockingCommand(req.PlanId, at)
	if err != nil {
		return s.fail(c, err)
	}

	removed, err := s.useCases.CompleteUndocking.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.CompleteUndockingResponse{
		Success:      true,
		ItemsRemoved: removed,
		Message:      fmt.Sprintf("Successfully undocked %d waste items", removed),
	})
}

// SimulateDays handles POST /api/simulate/day. Either numOfDays or toTimestamp
// sets the span; without both a single day passes.
func (s *Server) SimulateDays(c echo.Context) error {
	var req servers.SimulateDaysJSONRequestBody
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	perDay := value(req.ItemsToBeUsedPerDay)
	usages := make([]commands.ItemUsage, 0, len(perDay))
	for _, u := range perDay {
		uses := value(u.Uses)
		if uses == 0 {
			uses = 1
		}
		usages = append(usages, commands.ItemUsage{ItemID: u.ItemId, Uses: uses})
	}

	start := s.now()
	var (
		cmd commands.SimulateDaysCommand
		err error
	)
	switch {
	case value(req.ToTimestamp) != "":
		until, parseErr := parseTime("toTimestamp", *req.ToTimestamp, time.Time{})
		if parseErr != nil {
			return s.fail(c, parseErr)
		}
		cmd, err = commands.NewSimulateUntilCommand(start, until, usages)
	case req.NumOfDays != nil:
		cmd, err = commands.NewSimulateDaysCommand(start, *req.NumOfDays, usages)
	default:
		cmd, err = commands.NewSimulateDaysCommand(start, 1, usages)
	}
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.useCases.SimulateDays.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	changes := servers.SimulationChanges{
		ItemsUsed:          make([]servers.DayEvent, 0, len(result.Used)),
		ItemsExpired:       make([]servers.DayEvent, 0, len(result.Expired)),
		ItemsDepletedToday: make([]servers.DayEvent, 0, len(result.Depleted)),
	}
	for _, u := range result.Used {
		changes.ItemsUsed = append(changes.ItemsUsed, servers.DayEvent{
			Day: u.Day, ItemId: u.ItemID, Name: u.Name, RemainingUses: u.RemainingUses,
		})
	}
	for _, e := range result.Expired {
		changes.ItemsExpired = append(changes.ItemsExpired, servers.DayEvent{Day: e.Day, ItemId: e.ItemID, Name: e.Name})
	}
	for _, e := range result.Depleted {
		changes.ItemsDepletedToday = append(changes.ItemsDepletedToday, servers.DayEvent{Day: e.Day, ItemId: e.ItemID, Name: e.Name})
	}

	return c.JSON(http.StatusOK, servers.SimulateResponse{
		Success:       true,
		DaysSimulated: result.DaysSimulated,
		NewDate:       openapi_types.Date{Time: result.NewDate},
		Changes:       changes,
	})
}

// PlanRearrangement handles GET /api/rearrangement/{containerId}.
func (s *Server) PlanRearrangement(c echo.Context, containerID string) error {
	query, err := queries.NewPlanRearrangementQuery(containerID)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.useCases.PlanRearrangement.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	steps := make([]servers.RearrangementStep, 0, len(result.Steps()))
	for i, st := range result.Steps() {
		step := servers.RearrangementStep{
			Step:          i + 1,
			Action:        st.Action().String(),
			ItemId:        st.ItemID(),
			FromContainer: st.FromContainer(),
			ToContainer:   st.ToContainer(),
			Reason:        st.Reason(),
		}
		if o, ok := st.NewOrientation(); ok {
			step.NewOrientation = &servers.Coordinates{Width: o.Width, Depth: o.Depth, Height: o.Height}
		}
		steps = append(steps, step)
	}

	return c.JSON(http.StatusOK, servers.RearrangementResponse{
		Success:              true,
		ContainerId:          result.ContainerID(),
		Steps:                steps,
		EstimatedTimeMinutes: result.EstimatedTime().Minutes(),
	})
}

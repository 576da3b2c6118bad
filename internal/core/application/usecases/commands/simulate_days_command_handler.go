package commands

import (
	"context"
	"errors"
	"time"

	"stowage/internal/core/domain/model/cargo"
)

// DayEvent names an item affected on a simulated day, counted from 1.
type DayEvent struct {
	Day    int
	ItemID string
	Name   string
}

// DayUsage is a use applied on a simulated day.
type DayUsage struct {
	DayEvent
	// RemainingUses is nil for items without a usage limit.
	RemainingUses *int
}

// SimulationResult lists the changes of a simulation run.
type SimulationResult struct {
	DaysSimulated int
	NewDate       time.Time
	Used          []DayUsage
	Expired       []DayEvent
	Depleted      []DayEvent
}

// SimulateDaysCommandHandler replays the passing of days: each day expired items
// are flagged first, then the day's usages are applied. Usages of unknown or waste
// items are skipped.
type SimulateDaysCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewSimulateDaysCommandHandler(uowFactory ItemUoWFactory) SimulateDaysCommandHandler {
	return SimulateDaysCommandHandler{uowFactory: uowFactory}
}

func (h SimulateDaysCommandHandler) Handle(ctx context.Context, command SimulateDaysCommand) (SimulationResult, error) {
	if err := command.Validate(); err != nil {
		return SimulationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SimulationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()

	items, err := itemRepo.GetAllUsable(ctx)
	if err != nil {
		return SimulationResult{}, err
	}

	byID := make(map[string]*cargo.Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	result := SimulationResult{DaysSimulated: command.Days()}
	changed := make(map[string]bool)

	for day := 1; day <= command.Days(); day++ {
		date := command.Start().AddDate(0, 0, day)

		for _, item := range items {
			expired, checkErr := item.CheckExpiry(date)
			if checkErr != nil {
				return SimulationResult{}, checkErr
			}
			if expired {
				changed[item.ID()] = true
				result.Expired = append(result.Expired, DayEvent{Day: day, ItemID: item.ID(), Name: item.Name()})
			}
		}

		for _, usage := range command.Usages() {
			item, ok := byID[usage.ItemID]
			if !ok {
				continue
			}

			remaining, useErr := item.Use(usage.Uses, date)
			if errors.Is(useErr, cargo.ErrItemIsWaste) {
				continue
			}
			if useErr != nil {
				return SimulationResult{}, useErr
			}

			changed[item.ID()] = true
			event := DayEvent{Day: day, ItemID: item.ID(), Name: item.Name()}
			result.Used = append(result.Used, DayUsage{DayEvent: event, RemainingUses: remaining})
			if item.IsWaste() {
				result.Depleted = append(result.Depleted, event)
			}
		}
	}

	for _, item := range items {
		if !changed[item.ID()] {
			continue
		}
		if err = itemRepo.Update(ctx, item); err != nil {
			return SimulationResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SimulationResult{}, err
	}

	result.NewDate = command.Start().AddDate(0, 0, command.Days())
	return result, nil
}

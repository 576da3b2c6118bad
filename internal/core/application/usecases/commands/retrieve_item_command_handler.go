package commands

import (
	"context"
	"errors"
	"fmt"

	"stowage/internal/core/domain/services"
	"stowage/internal/pkg/errs"
)

// RetrieveItemResult reports the effort and the effect of a retrieval.
type RetrieveItemResult struct {
	ItemName string
	// Steps is the number of items to move aside before reaching the item.
	Steps int
	// RemainingUses is nil for items without a usage limit.
	RemainingUses *int
	// BecameWaste is set when this retrieval used up the item.
	BecameWaste bool
}

// RetrieveItemCommandHandler computes the retrieval cost of an item and consumes one use.
type RetrieveItemCommandHandler struct {
	uowFactory UoWFactory
	costModel  services.RetrievalCostModel
}

func NewRetrieveItemCommandHandler(uowFactory UoWFactory) RetrieveItemCommandHandler {
	return RetrieveItemCommandHandler{
		uowFactory: uowFactory,
		costModel:  services.NewRetrievalCostModel(),
	}
}

// Handle returns services.ErrItemNotPlaced for items without a placement and
// cargo.ErrItemIsWaste for items already flagged as waste.
func (h RetrieveItemCommandHandler) Handle(ctx context.Context, command RetrieveItemCommand) (RetrieveItemResult, error) {
	if err := command.Validate(); err != nil {
		return RetrieveItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RetrieveItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	placementRepo := uow.PlacementRepository()

	item, err := itemRepo.Get(ctx, command.ItemID())
	if err != nil {
		return RetrieveItemResult{}, err
	}

	target, err := placementRepo.GetByItem(ctx, item.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return RetrieveItemResult{}, fmt.Errorf("%w: %s", services.ErrItemNotPlaced, item.ID())
	}
	if err != nil {
		return RetrieveItemResult{}, err
	}

	neighbours, err := placementRepo.GetByContainer(ctx, target.ContainerID())
	if err != nil {
		return RetrieveItemResult{}, err
	}

	steps, err := h.costModel.Cost(&target, neighbours)
	if err != nil {
		return RetrieveItemResult{}, err
	}

	remaining, err := item.Use(1, command.At())
	if err != nil {
		return RetrieveItemResult{}, err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return RetrieveItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RetrieveItemResult{}, err
	}

	return RetrieveItemResult{
		ItemName:      item.Name(),
		Steps:         steps,
		RemainingUses: remaining,
		BecameWaste:   item.IsWaste(),
	}, nil
}

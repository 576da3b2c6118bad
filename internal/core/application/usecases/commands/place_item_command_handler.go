package commands

import (
	"context"
	"errors"
	"fmt"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/pkg/errs"
)

// PlaceItemCommandHandler moves an item to the commanded position. The item's
// previous placement, if any, is replaced and its volume given back.
type PlaceItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewPlaceItemCommandHandler(uowFactory UoWFactory) PlaceItemCommandHandler {
	return PlaceItemCommandHandler{uowFactory: uowFactory}
}

// Handle returns storage.ErrCapacityExceeded when the target container lacks room
// and an error wrapping kernel.ErrInvalidGeometry when the commanded corners do
// not frame the item.
func (h PlaceItemCommandHandler) Handle(ctx context.Context, command PlaceItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	containerRepo := uow.ContainerRepository()
	placementRepo := uow.PlacementRepository()

	item, err := itemRepo.Get(ctx, command.ItemID())
	if err != nil {
		return err
	}

	p, err := placement.RestorePlacement(item.ID(), command.ContainerID(), command.Start(), command.End())
	if err != nil {
		return err
	}
	if !p.Fits(item.Dimension()) {
		return fmt.Errorf("%w: %w", kernel.ErrInvalidGeometry, errs.NewValueIsInvalidErrorWithCause("end",
			fmt.Errorf("%s does not hold item of size %s", p, item.Dimension())))
	}

	var sourceID string
	previous, err := placementRepo.GetByItem(ctx, item.ID())
	switch {
	case err == nil:
		sourceID = previous.ContainerID()
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	locked, err := lockContainers(ctx, containerRepo, command.ContainerID(), sourceID)
	if err != nil {
		return err
	}
	target := locked[command.ContainerID()]

	if sourceID != "" {
		source := locked[sourceID]
		if err = source.Release(item.Volume()); err != nil {
			return err
		}
		if !source.IsEqual(target) {
			if err = containerRepo.Update(ctx, source); err != nil {
				return err
			}
		}
	}

	if err = target.Reserve(item.Volume()); err != nil {
		return err
	}

	if err = placementRepo.Save(ctx, p); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

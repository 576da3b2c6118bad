package commands

import (
	"context"
	"errors"

	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/pkg/errs"
)

// CompleteUndockingCommandHandler removes the manifest's items from the station.
//
// For every listed item its placement is dropped, the volume it held in another
// container is released and the item is deleted. The undocking container is
// emptied and the manifest marked completed.
type CompleteUndockingCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteUndockingCommandHandler(uowFactory UoWFactory) CompleteUndockingCommandHandler {
	return CompleteUndockingCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of items removed.
func (h CompleteUndockingCommandHandler) Handle(ctx context.Context, command CompleteUndockingCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	containerRepo := uow.ContainerRepository()
	placementRepo := uow.PlacementRepository()
	manifestRepo := uow.ReturnManifestRepository()

	manifest, err := manifestRepo.Get(ctx, command.ManifestID())
	if err != nil {
		return 0, err
	}

	if err = manifest.Complete(command.At()); err != nil {
		return 0, err
	}

	placements := make(map[string]placement.Placement, len(manifest.Items()))
	lockIDs := []string{manifest.UndockingContainerID()}
	for _, ri := range manifest.Items() {
		p, getErr := placementRepo.GetByItem(ctx, ri.ItemID)
		switch {
		case getErr == nil:
			placements[ri.ItemID] = p
			lockIDs = append(lockIDs, p.ContainerID())
		case !errors.Is(getErr, errs.ErrObjectNotFound):
			return 0, getErr
		}
	}

	locked, err := lockContainers(ctx, containerRepo, lockIDs...)
	if err != nil {
		return 0, err
	}
	undocking := locked[manifest.UndockingContainerID()]

	var touched []*storage.Container
	removed := 0

	for _, ri := range manifest.Items() {
		if p, ok := placements[ri.ItemID]; ok {
			if p.ContainerID() != undocking.ID() {
				source := locked[p.ContainerID()]
				if !containsContainer(touched, source) {
					touched = append(touched, source)
				}
				if err = source.Release(ri.Volume); err != nil {
					return 0, err
				}
			}
			if err = placementRepo.Delete(ctx, ri.ItemID); err != nil {
				return 0, err
			}
		}

		err = itemRepo.Delete(ctx, ri.ItemID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}
		removed++
	}

	for _, c := range touched {
		if err = containerRepo.Update(ctx, c); err != nil {
			return 0, err
		}
	}

	undocking.Empty()
	if err = containerRepo.Update(ctx, undocking); err != nil {
		return 0, err
	}

	if err = manifestRepo.Update(ctx, manifest); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}

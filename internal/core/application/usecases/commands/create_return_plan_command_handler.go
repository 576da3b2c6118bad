package commands

import (
	"context"

	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/services"
)

// CreateReturnPlanCommandHandler builds and stores the return manifest of an
// undocking container.
type CreateReturnPlanCommandHandler struct {
	uowFactory UoWFactory
	planner    services.WasteSelectionPlanner
}

func NewCreateReturnPlanCommandHandler(uowFactory UoWFactory) CreateReturnPlanCommandHandler {
	return CreateReturnPlanCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewWasteSelectionPlanner(),
	}
}

// Handle returns services.ErrContainerNotFound when the undocking container is
// unknown; nothing is stored in that case.
func (h CreateReturnPlanCommandHandler) Handle(
	ctx context.Context,
	command CreateReturnPlanCommand,
) (*plan.ReturnManifest, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containers, err := uow.ContainerRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	waste, err := uow.ItemRepository().GetAllWaste(ctx)
	if err != nil {
		return nil, err
	}

	placements, err := uow.PlacementRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	manifest, _, err := h.planner.PlanReturn(
		command.UndockingContainerID(),
		containers,
		waste,
		placements,
		command.MaxWeight(),
		command.UndockingDate(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ReturnManifestRepository().Add(ctx, manifest); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return manifest, nil
}

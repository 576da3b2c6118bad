package queries

import (
	"context"

	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/services"
	"stowage/internal/core/ports"
)

// PlanRearrangementQueryHandler runs the rearrangement planner on the stored
// contents of a container.
type PlanRearrangementQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	planner    services.RearrangementPlanner
}

func NewPlanRearrangementQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	planner services.RearrangementPlanner,
) PlanRearrangementQueryHandler {
	return PlanRearrangementQueryHandler{uowFactory: uowFactory, planner: planner}
}

// Handle returns errs.ErrObjectNotFound for an unknown container.
func (h PlanRearrangementQueryHandler) Handle(
	ctx context.Context,
	query PlanRearrangementQuery,
) (*plan.RearrangementPlan, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	containerRepo := uow.ContainerRepository()

	congested, err := containerRepo.Get(ctx, query.ContainerID())
	if err != nil {
		return nil, err
	}

	items, err := uow.ItemRepository().GetByContainer(ctx, congested.ID())
	if err != nil {
		return nil, err
	}

	containers, err := containerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return h.planner.Plan(congested.ID(), items, containers)
}

package queries

import (
	"errors"

	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var ErrPlanRearrangementQueryIsNotConstructed = errors.New(
	"PlanRearrangementQuery must be created via NewPlanRearrangementQuery constructor",
)

// PlanRearrangementQuery asks how to free space in a congested container.
// The plan is advisory and nothing is changed.
type PlanRearrangementQuery struct {
	containerID string
	guard       guard.ConstructorGuard
}

func NewPlanRearrangementQuery(containerID string) (PlanRearrangementQuery, error) {
	if containerID == "" {
		return PlanRearrangementQuery{}, errs.NewValueIsRequiredError("containerID")
	}
	return PlanRearrangementQuery{containerID: containerID, guard: guard.NewConstructorGuard()}, nil
}

func (q PlanRearrangementQuery) ContainerID() string {
	return q.containerID
}

func (q PlanRearrangementQuery) Validate() error {
	return q.guard.Validate(ErrPlanRearrangementQueryIsNotConstructed)
}

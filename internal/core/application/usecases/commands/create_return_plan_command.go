package commands

import (
	"errors"
	"fmt"
	"time"

	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var ErrCreateReturnPlanCommandIsNotConstructed = errors.New(
	"CreateReturnPlanCommand must be created via NewCreateReturnPlanCommand constructor",
)

// CreateReturnPlanCommand selects the waste to load into an undocking container.
type CreateReturnPlanCommand struct {
	undockingContainerID string
	undockingDate        time.Time
	maxWeight            float64
	guard                guard.ConstructorGuard
}

func NewCreateReturnPlanCommand(
	undockingContainerID string,
	undockingDate time.Time,
	maxWeight float64,
) (CreateReturnPlanCommand, error) {
	var errList []error
	if undockingContainerID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("undockingContainerID"))
	}
	if undockingDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("undockingDate"))
	}
	if maxWeight < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("maxWeight", fmt.Errorf("%g is negative", maxWeight)))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateReturnPlanCommand{}, err
	}

	return CreateReturnPlanCommand{
		undockingContainerID: undockingContainerID,
		undockingDate:        undockingDate,
		maxWeight:            maxWeight,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReturnPlanCommand) UndockingContainerID() string {
	return c.undockingContainerID
}

func (c CreateReturnPlanCommand) UndockingDate() time.Time {
	return c.undockingDate
}

func (c CreateReturnPlanCommand) MaxWeight() float64 {
	return c.maxWeight
}

func (c CreateReturnPlanCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnPlanCommandIsNotConstructed)
}

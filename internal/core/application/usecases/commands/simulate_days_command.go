package commands

import (
	"errors"
	"fmt"
	"time"

	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

// MaxSimulatedDays bounds one simulation request to ten years.
const MaxSimulatedDays = 3650

var ErrSimulateDaysCommandIsNotConstructed = errors.New(
	"SimulateDaysCommand must be created via NewSimulateDaysCommand constructor",
)

// ItemUsage is a number of uses an item gets every simulated day.
type ItemUsage struct {
	ItemID string
	Uses   int
}

// SimulateDaysCommand advances the station clock day by day from start.
type SimulateDaysCommand struct {
	start  time.Time
	days   int
	usages []ItemUsage
	guard  guard.ConstructorGuard
}

func NewSimulateDaysCommand(start time.Time, days int, usages []ItemUsage) (SimulateDaysCommand, error) {
	var errList []error
	if start.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("start"))
	}
	if days < 1 || days > MaxSimulatedDays {
		errList = append(errList, errs.NewValueIsOutOfRangeError("days", days, 1, MaxSimulatedDays))
	}
	for _, u := range usages {
		if u.ItemID == "" {
			errList = append(errList, errs.NewValueIsRequiredError("usages.itemID"))
		}
		if u.Uses <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("usages.uses", fmt.Errorf("%d is not greater than 0", u.Uses)))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return SimulateDaysCommand{}, err
	}

	return SimulateDaysCommand{
		start:  start,
		days:   days,
		usages: usages,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewSimulateUntilCommand simulates every calendar day after start up to and
// including the day of until.
func NewSimulateUntilCommand(start, until time.Time, usages []ItemUsage) (SimulateDaysCommand, error) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	return NewSimulateDaysCommand(start, days, usages)
}

func (c SimulateDaysCommand) Start() time.Time {
	return c.start
}

func (c SimulateDaysCommand) Days() int {
	return c.days
}

func (c SimulateDaysCommand) Usages() []ItemUsage {
	return c.usages
}

func (c SimulateDaysCommand) Validate() error {
	return c.guard.Validate(ErrSimulateDaysCommandIsNotConstructed)
}

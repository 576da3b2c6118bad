package commands

import (
	"errors"
	"time"

	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var ErrIdentifyWasteCommandIsNotConstructed = errors.New(
	"IdentifyWasteCommand must be created via NewIdentifyWasteCommand constructor",
)

// IdentifyWasteCommand flags the items that are expired or used up as of now.
type IdentifyWasteCommand struct {
	now   time.Time
	guard guard.ConstructorGuard
}

func NewIdentifyWasteCommand(now time.Time) (IdentifyWasteCommand, error) {
	if now.IsZero() {
		return IdentifyWasteCommand{}, errs.NewValueIsRequiredError("now")
	}
	return IdentifyWasteCommand{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (c IdentifyWasteCommand) Now() time.Time {
	return c.now
}

func (c IdentifyWasteCommand) Validate() error {
	return c.guard.Validate(ErrIdentifyWasteCommandIsNotConstructed)
}

package commands

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var ErrCompleteUndockingCommandIsNotConstructed = errors.New(
	"CompleteUndockingCommand must be created via NewCompleteUndockingCommand constructor",
)

// CompleteUndockingCommand records that the container of a return manifest left
// the station with its waste.
type CompleteUndockingCommand struct {
	manifestID uuid.UUID
	at         time.Time
	guard      guard.ConstructorGuard
}

func NewCompleteUndockingCommand(manifestID uuid.UUID, at time.Time) (CompleteUndockingCommand, error) {
	if manifestID == uuid.Nil {
		return CompleteUndockingCommand{}, errs.NewValueIsRequiredError("manifestID")
	}
	if at.IsZero() {
		return CompleteUndockingCommand{}, errs.NewValueIsRequiredError("at")
	}

	return CompleteUndockingCommand{
		manifestID: manifestID,
		at:         at,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteUndockingCommand) ManifestID() uuid.UUID {
	return c.manifestID
}

func (c CompleteUndockingCommand) At() time.Time {
	return c.at
}

func (c CompleteUndockingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteUndockingCommandIsNotConstructed)
}

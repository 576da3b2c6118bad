package commands

import (
	"errors"
	"time"

	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var ErrRetrieveItemCommandIsNotConstructed = errors.New(
	"RetrieveItemCommand must be created via NewRetrieveItemCommand constructor",
)

// RetrieveItemCommand records one use of an item taken out of its container.
type RetrieveItemCommand struct {
	itemID string
	userID string
	at     time.Time
	guard  guard.ConstructorGuard
}

func NewRetrieveItemCommand(itemID, userID string, at time.Time) (RetrieveItemCommand, error) {
	if itemID == "" {
		return RetrieveItemCommand{}, errs.NewValueIsRequiredError("itemID")
	}
	if at.IsZero() {
		return RetrieveItemCommand{}, errs.NewValueIsRequiredError("at")
	}

	return RetrieveItemCommand{
		itemID: itemID,
		userID: userID,
		at:     at,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RetrieveItemCommand) ItemID() string {
	return c.itemID
}

func (c RetrieveItemCommand) UserID() string {
	return c.userID
}

func (c RetrieveItemCommand) At() time.Time {
	return c.at
}

func (c RetrieveItemCommand) Validate() error {
	return c.guard.Validate(ErrRetrieveItemCommandIsNotConstructed)
}

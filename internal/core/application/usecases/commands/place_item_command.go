package commands

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var ErrPlaceItemCommandIsNotConstructed = errors.New(
	"PlaceItemCommand must be created via NewPlaceItemCommand constructor",
)

// PlaceItemCommand records that the crew put an item at an explicit position.
type PlaceItemCommand struct {
	itemID      string
	containerID string
	start       kernel.Coordinates
	end         kernel.Coordinates
	userID      string
	guard       guard.ConstructorGuard
}

// NewPlaceItemCommand creates the command; userID is optional and only logged.
func NewPlaceItemCommand(itemID, containerID string, start, end kernel.Coordinates, userID string) (PlaceItemCommand, error) {
	var errList []error
	if itemID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("itemID"))
	}
	if containerID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("containerID"))
	}
	if err := errors.Join(errList...); err != nil {
		return PlaceItemCommand{}, err
	}

	return PlaceItemCommand{
		itemID:      itemID,
		containerID: containerID,
		start:       start,
		end:         end,
		userID:      userID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceItemCommand) ItemID() string {
	return c.itemID
}

func (c PlaceItemCommand) ContainerID() string {
	return c.containerID
}

func (c PlaceItemCommand) Start() kernel.Coordinates {
	return c.start
}

func (c PlaceItemCommand) End() kernel.Coordinates {
	return c.end
}

func (c PlaceItemCommand) UserID() string {
	return c.userID
}

func (c PlaceItemCommand) Validate() error {
	return c.guard.Validate(ErrPlaceItemCommandIsNotConstructed)
}

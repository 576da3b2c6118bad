package queries

import (
	"errors"
	"time"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var ErrGetWasteItemsQueryIsNotConstructed = errors.New(
	"GetWasteItemsQuery must be created via NewGetWasteItemsQuery constructor",
)

// GetWasteItemsQuery lists every item flagged as waste, oldest mark first.
type GetWasteItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWasteItemsQuery() GetWasteItemsQuery {
	return GetWasteItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWasteItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetWasteItemsQueryIsNotConstructed)
}

// WasteItemPosition is where a waste item is stowed.
type WasteItemPosition struct {
	ContainerID string
	Start       kernel.Coordinates
	End         kernel.Coordinates
}

type GetWasteItemsResponse struct {
	ItemID   string
	Name     string
	Reason   string
	MarkedAt time.Time
	Volume   float64
	Mass     float64
	// Position is nil for waste that is not placed in any container.
	Position *WasteItemPosition
}

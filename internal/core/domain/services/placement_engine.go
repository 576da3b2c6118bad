package services

import (
	"cmp"
	"errors"
	"slices"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/pkg/errs"
)

// RearrangementRequired is the message attached to items no container can take.
const RearrangementRequired = "rearrangement required"

// PlacementRequest is the value record of an item awaiting placement. Its
// dimension is unchecked, so malformed input reaches the engine and is rejected
// there for that item only.
type PlacementRequest struct {
	ItemID        string
	Dimension     kernel.Dimension
	Priority      int
	PreferredZone string
}

// RequestFromItem builds the placement request of a stored item.
func RequestFromItem(item *cargo.Item) PlacementRequest {
	return PlacementRequest{
		ItemID:        item.ID(),
		Dimension:     item.Dimension(),
		Priority:      item.Priority(),
		PreferredZone: item.PreferredZone(),
	}
}

func (r PlacementRequest) validate() error {
	var idErr error
	if r.ItemID == "" {
		idErr = errs.NewValueIsRequiredError("itemID")
	}
	return errors.Join(idErr, r.Dimension.Validate())
}

// Unplaceable is an item that fit in no container.
type Unplaceable struct {
	ItemID  string
	Message string
}

// Rejection is an item refused before allocation because its record was malformed.
type Rejection struct {
	ItemID string
	Err    error
}

// PlacementResult is the outcome of PlacementEngine.Recommend.
type PlacementResult struct {
	// Placements in the order they were made, which is non-increasing priority.
	Placements []placement.Placement
	// Unplaceable items need a rearrangement before they can be stowed.
	Unplaceable []Unplaceable
	// Rejected items were excluded from allocation altogether.
	Rejected []Rejection
	// Containers are the working copies after allocation, in input order.
	Containers []*storage.Container
}

// Container returns the working copy with the given id, or nil.
func (r PlacementResult) Container(id string) *storage.Container {
	for _, c := range r.Containers {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// PlacementEngine assigns items to containers.
//
// Algorithm:
//   - requests are stable-sorted by descending priority, ties keep input order
//   - each item first tries the containers of its preferred zone, then all containers;
//     in each pass the selection strategy picks one container that fits
//   - a placed item sits at the container origin with end = its dimension and its
//     volume is deducted from the working copy of the container
//   - an item that fits nowhere is reported as unplaceable and consumes nothing
//   - a repeated item id is rejected with ErrDuplicateItem; the first request in
//     placement order is the one allocated
//
// Only volume is booked; no stacking geometry is computed.
//
// Example usage:
//
//	engine := services.NewPlacementEngine(services.LargestAvailableStrategy{})
//	result, err := engine.Recommend(requests, containers)
//	if err != nil {
//	    // malformed container snapshot
//	}
//	for _, p := range result.Placements {
//	    // apply p
//	}
type PlacementEngine struct {
	strategy ContainerSelectionStrategy
}

// NewPlacementEngine creates an engine; a nil strategy selects LargestAvailableStrategy.
func NewPlacementEngine(strategy ContainerSelectionStrategy) PlacementEngine {
	if strategy == nil {
		strategy = LargestAvailableStrategy{}
	}
	return PlacementEngine{strategy: strategy}
}

// Recommend allocates the requests over working copies of the containers.
//
// Returns an error only when the container snapshot itself is malformed; per-item
// problems are reported inside the result.
func (e PlacementEngine) Recommend(requests []PlacementRequest, containers []*storage.Container) (PlacementResult, error) {
	working := make([]*storage.Container, 0, len(containers))
	for _, c := range containers {
		if err := c.Validate(); err != nil {
			return PlacementResult{}, err
		}
		working = append(working, c.Clone())
	}

	ordered := slices.Clone(requests)
	slices.SortStableFunc(ordered, func(a, b PlacementRequest) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	result := PlacementResult{Containers: working}
	seen := make(map[string]struct{}, len(ordered))
	for _, req := range ordered {
		if err := req.validate(); err != nil {
			result.Rejected = append(result.Rejected, Rejection{ItemID: req.ItemID, Err: err})
			continue
		}
		if _, dup := seen[req.ItemID]; dup {
			result.Rejected = append(result.Rejected, Rejection{ItemID: req.ItemID, Err: ErrDuplicateItem})
			continue
		}
		seen[req.ItemID] = struct{}{}

		target := e.choose(req, working)
		if target == nil {
			result.Unplaceable = append(result.Unplaceable, Unplaceable{ItemID: req.ItemID, Message: RearrangementRequired})
			continue
		}

		p, err := placement.NewPlacement(req.ItemID, target.ID(), kernel.Origin(), req.Dimension)
		if err == nil {
			err = target.Reserve(req.Dimension.Volume())
		}
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{ItemID: req.ItemID, Err: err})
			continue
		}

		result.Placements = append(result.Placements, p)
	}

	return result, nil
}

func (e PlacementEngine) choose(req PlacementRequest, working []*storage.Container) *storage.Container {
	volume := req.Dimension.Volume()

	preferred := make([]*storage.Container, 0, len(working))
	for _, c := range working {
		if c.Zone() == req.PreferredZone {
			preferred = append(preferred, c)
		}
	}

	if c := e.strategy.Select(volume, preferred); c != nil {
		return c
	}
	return e.strategy.Select(volume, working)
}

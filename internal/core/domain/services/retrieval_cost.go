package services

import (
	"cmp"
	"fmt"
	"slices"

	"stowage/internal/core/domain/model/placement"
)

// RetrievalCostModel estimates how many items must be displaced to reach a stowed item.
//
// Items are treated as stacked along the depth axis, the open face at depth 0. A
// placement whose start depth is strictly smaller than the target's, in the same
// container, is in front of it and counts once. Equal depth means side by side and
// does not count. Width and height offsets are ignored: occlusion is single-axis.
type RetrievalCostModel struct{}

func NewRetrievalCostModel() RetrievalCostModel {
	return RetrievalCostModel{}
}

// Cost returns the number of placements blocking target. A nil target means the
// item is not placed and yields ErrItemNotPlaced.
func (m RetrievalCostModel) Cost(target *placement.Placement, containerPlacements []placement.Placement) (int, error) {
	blockers, err := m.Blockers(target, containerPlacements)
	if err != nil {
		return 0, err
	}
	return len(blockers), nil
}

// CostFor looks the item's placement up among placements and returns its cost.
func (m RetrievalCostModel) CostFor(itemID string, placements []placement.Placement) (int, error) {
	target := FindPlacement(itemID, placements)
	if target == nil {
		return 0, fmt.Errorf("%w: %s", ErrItemNotPlaced, itemID)
	}
	return m.Cost(target, placements)
}

// Blockers returns the placements in front of target, nearest to the open face first.
func (m RetrievalCostModel) Blockers(target *placement.Placement, containerPlacements []placement.Placement) ([]placement.Placement, error) {
	if target == nil {
		return nil, ErrItemNotPlaced
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	var blockers []placement.Placement
	for _, p := range containerPlacements {
		if p.Blocks(*target) {
			blockers = append(blockers, p)
		}
	}

	slices.SortStableFunc(blockers, func(a, b placement.Placement) int {
		return cmp.Compare(a.Start().Depth, b.Start().Depth)
	})
	return blockers, nil
}

// Instructions renders the crew-facing retrieval steps for an item.
//
// Example output:
//
//	1. Locate container contA in Lab zone
//	2. Remove 2 items in front if necessary
//	3. Retrieve Food Packet (ID: ITEM001)
func (m RetrievalCostModel) Instructions(
	itemID, itemName, zone string,
	target *placement.Placement,
	containerPlacements []placement.Placement,
) ([]string, error) {
	cost, err := m.Cost(target, containerPlacements)
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("1. Locate container %s in %s zone", target.ContainerID(), zone),
		fmt.Sprintf("2. Remove %d items in front if necessary", cost),
		fmt.Sprintf("3. Retrieve %s (ID: %s)", itemName, itemID),
	}, nil
}

// FindPlacement returns the placement of itemID, or nil.
func FindPlacement(itemID string, placements []placement.Placement) *placement.Placement {
	for i := range placements {
		if placements[i].ItemID() == itemID {
			p := placements[i]
			return &p
		}
	}
	return nil
}

package services

import (
	"cmp"
	"slices"
	"time"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/model/storage"
)

// WasteSelection is the subset of waste chosen for return with its totals.
type WasteSelection struct {
	Items       []*cargo.Item
	TotalVolume float64
	TotalMass   float64
}

// ItemIDs returns the ids of the selected items in selection order.
func (s WasteSelection) ItemIDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		ids = append(ids, it.ID())
	}
	return ids
}

// WasteSelectionPlanner chooses which waste items go into an undocking container.
//
// If the whole waste set fits both the volume and the mass limit, everything is
// selected. Otherwise items are scanned once, oldest waste mark first (ties by item
// id), and each item is taken while both running totals stay within their limits.
// An item that would overflow a limit is skipped and the scan continues, so a later
// smaller item can still be taken.
//
// This is a single-pass greedy approximation, not an exact knapsack optimum: with
// limits (volume 12, mass 5) and W1 (10, 2) marked before W2 (15, 3) the result
// is [W1] with totals (10, 2).
type WasteSelectionPlanner struct{}

func NewWasteSelectionPlanner() WasteSelectionPlanner {
	return WasteSelectionPlanner{}
}

// Select picks waste items within the limits. Items not flagged as waste are ignored.
func (WasteSelectionPlanner) Select(wasteItems []*cargo.Item, volumeLimit, massLimit float64) WasteSelection {
	ordered := orderedWaste(wasteItems)

	var totalVolume, totalMass float64
	for _, it := range ordered {
		totalVolume += it.Volume()
		totalMass += it.Mass()
	}
	if totalVolume <= volumeLimit && totalMass <= massLimit {
		return WasteSelection{Items: ordered, TotalVolume: totalVolume, TotalMass: totalMass}
	}

	selection := WasteSelection{Items: []*cargo.Item{}}
	for _, it := range ordered {
		volume, mass := selection.TotalVolume+it.Volume(), selection.TotalMass+it.Mass()
		if volume > volumeLimit || mass > massLimit {
			continue
		}
		selection.Items = append(selection.Items, it)
		selection.TotalVolume, selection.TotalMass = volume, mass
	}
	return selection
}

// PlanReturn selects waste for the undocking container, using its available volume
// as the volume limit, and wraps the selection into a return manifest. placements
// tell where each selected item is stored now.
//
// Returns ErrContainerNotFound when containerID is not among containers.
func (s WasteSelectionPlanner) PlanReturn(
	containerID string,
	containers []*storage.Container,
	wasteItems []*cargo.Item,
	placements []placement.Placement,
	massLimit float64,
	undockingDate time.Time,
) (*plan.ReturnManifest, WasteSelection, error) {
	var undocking *storage.Container
	for _, c := range containers {
		if c != nil && c.ID() == containerID {
			undocking = c
			break
		}
	}
	if undocking == nil {
		return nil, WasteSelection{}, ErrContainerNotFound
	}
	if err := undocking.Validate(); err != nil {
		return nil, WasteSelection{}, err
	}

	selection := s.Select(wasteItems, undocking.AvailableVolume(), massLimit)

	items := make([]plan.ReturnItem, 0, len(selection.Items))
	for _, it := range selection.Items {
		from := ""
		if p := FindPlacement(it.ID(), placements); p != nil {
			from = p.ContainerID()
		}
		ri, err := plan.NewReturnItem(it, from)
		if err != nil {
			return nil, WasteSelection{}, err
		}
		items = append(items, ri)
	}

	manifest, err := plan.NewReturnManifest(undocking.ID(), undockingDate, items)
	if err != nil {
		return nil, WasteSelection{}, err
	}
	return manifest, selection, nil
}

func orderedWaste(items []*cargo.Item) []*cargo.Item {
	ordered := make([]*cargo.Item, 0, len(items))
	for _, it := range items {
		if it.Validate() == nil && it.IsWaste() {
			ordered = append(ordered, it)
		}
	}

	slices.SortFunc(ordered, func(a, b *cargo.Item) int {
		wa, _ := a.Waste()
		wb, _ := b.Waste()
		if c := wa.MarkedAt().Compare(wb.MarkedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
	return ordered
}

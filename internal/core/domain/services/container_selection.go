package services

import "stowage/internal/core/domain/model/storage"

// ContainerSelectionStrategy picks one container able to take the given volume,
// or nil when none can. Implementations must be deterministic for a given
// candidate order and must not mutate the candidates.
type ContainerSelectionStrategy interface {
	Select(volume float64, candidates []*storage.Container) *storage.Container
}

// LargestAvailableStrategy picks the fitting container with the most available
// volume, keeping the earlier candidate on ties.
type LargestAvailableStrategy struct{}

func (LargestAvailableStrategy) Select(volume float64, candidates []*storage.Container) *storage.Container {
	var best *storage.Container
	for _, c := range candidates {
		if !c.Fits(volume) {
			continue
		}
		if best == nil || c.AvailableVolume() > best.AvailableVolume() {
			best = c
		}
	}
	return best
}

// FirstFitStrategy picks the first candidate that fits.
type FirstFitStrategy struct{}

func (FirstFitStrategy) Select(volume float64, candidates []*storage.Container) *storage.Container {
	for _, c := range candidates {
		if c.Fits(volume) {
			return c
		}
	}
	return nil
}

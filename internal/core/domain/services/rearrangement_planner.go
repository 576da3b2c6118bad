package services

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/pkg/errs"
)

const (
	moveReason   = "Make space for high priority items"
	rotateReason = "Rotate to improve space utilization"
)

// RearrangementPlanner proposes how to free space in a congested container.
//
// Algorithm:
//   - items with priority below the policy threshold are move candidates, least
//     important first (stable)
//   - each candidate goes to the first other container, in descending order of
//     current available volume, that can take its volume; that volume is deducted
//     from the destination's working copy before the next candidate is considered
//   - every item not moved whose width differs from its height gets a rotate step
//     suggesting the swapped orientation; rotations consume no capacity
//   - estimated time = moves*MoveDuration + rotations*RotateDuration
//
// The planner never assigns more volume to a destination than it had available at
// the time of the assignment. Executing the plan is up to the caller.
type RearrangementPlanner struct {
	policy RearrangementPolicy
}

func NewRearrangementPlanner(policy RearrangementPolicy) RearrangementPlanner {
	return RearrangementPlanner{policy: policy}
}

// Policy returns the planner's tunables.
func (r RearrangementPlanner) Policy() RearrangementPolicy {
	return r.policy
}

// Plan builds the rearrangement plan for containerID. items are the contents of
// that container, others the remaining containers of the station; a container
// with the congested id among others is skipped.
func (r RearrangementPlanner) Plan(containerID string, items []*cargo.Item, others []*storage.Container) (*plan.RearrangementPlan, error) {
	if containerID == "" {
		return nil, errs.NewValueIsRequiredError("containerID")
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
	}

	destinations := make([]*storage.Container, 0, len(others))
	for _, c := range others {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.ID() != containerID {
			destinations = append(destinations, c.Clone())
		}
	}

	candidates := make([]*cargo.Item, 0, len(items))
	for _, it := range items {
		if it.Priority() < r.policy.PriorityThreshold {
			candidates = append(candidates, it)
		}
	}
	slices.SortStableFunc(candidates, func(a, b *cargo.Item) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})

	var steps []plan.Step
	moved := make(map[string]bool, len(candidates))
	for _, it := range candidates {
		dest := firstByAvailableVolume(it.Volume(), destinations)
		if dest == nil {
			continue
		}
		if err := dest.Reserve(it.Volume()); err != nil {
			return nil, err
		}

		step, err := plan.NewMoveStep(it.ID(), containerID, dest.ID(),
			fmt.Sprintf("%s (priority %d)", moveReason, it.Priority()))
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
		moved[it.ID()] = true
	}

	moves := len(steps)
	for _, it := range items {
		if moved[it.ID()] || it.Dimension().IsSquareFaced() {
			continue
		}

		step, err := plan.NewRotateStep(it.ID(), containerID, it.Dimension().Rotated(), rotateReason)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	rotations := len(steps) - moves

	estimated := time.Duration(moves)*r.policy.MoveDuration + time.Duration(rotations)*r.policy.RotateDuration
	return plan.NewRearrangementPlan(containerID, steps, estimated)
}

func firstByAvailableVolume(volume float64, destinations []*storage.Container) *storage.Container {
	ordered := slices.Clone(destinations)
	slices.SortStableFunc(ordered, func(a, b *storage.Container) int {
		return cmp.Compare(b.AvailableVolume(), a.AvailableVolume())
	})

	for _, c := range ordered {
		if c.AvailableVolume() >= volume {
			return c
		}
	}
	return nil
}

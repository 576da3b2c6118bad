package services

import (
	"fmt"
	"time"

	"stowage/internal/pkg/errs"
)

// Container selection strategy names accepted by PlacementPolicy.
const (
	LargestAvailable = "largest-available"
	FirstFit         = "first-fit"
)

// PlacementPolicy configures the placement engine.
type PlacementPolicy struct {
	Strategy string `mapstructure:"strategy"`
}

// DefaultPlacementPolicy selects the largest-available strategy.
func DefaultPlacementPolicy() PlacementPolicy {
	return PlacementPolicy{Strategy: LargestAvailable}
}

// SelectionStrategy resolves the configured strategy name.
func (p PlacementPolicy) SelectionStrategy() (ContainerSelectionStrategy, error) {
	switch p.Strategy {
	case LargestAvailable, "":
		return LargestAvailableStrategy{}, nil
	case FirstFit:
		return FirstFitStrategy{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("strategy",
			fmt.Errorf("%q is not one of %s, %s", p.Strategy, LargestAvailable, FirstFit))
	}
}

// RearrangementPolicy holds the tunables of the rearrangement planner.
//
// Items with a priority strictly below PriorityThreshold are movable. The plan's
// estimated time is moves*MoveDuration + rotations*RotateDuration.
type RearrangementPolicy struct {
	PriorityThreshold int           `mapstructure:"priority_threshold"`
	MoveDuration      time.Duration `mapstructure:"move_duration"`
	RotateDuration    time.Duration `mapstructure:"rotate_duration"`
}

// DefaultRearrangementPolicy returns threshold 50, 10 minutes per move and 5 per rotation.
func DefaultRearrangementPolicy() RearrangementPolicy {
	return RearrangementPolicy{
		PriorityThreshold: 50,
		MoveDuration:      10 * time.Minute,
		RotateDuration:    5 * time.Minute,
	}
}

// Validate rejects negative durations and thresholds outside the priority scale.
func (p RearrangementPolicy) Validate() error {
	if p.PriorityThreshold < 0 || p.PriorityThreshold > 101 {
		return errs.NewValueIsOutOfRangeError("priorityThreshold", p.PriorityThreshold, 0, 101)
	}
	if p.MoveDuration < 0 {
		return errs.NewValueIsInvalidErrorWithCause("moveDuration", fmt.Errorf("%s is negative", p.MoveDuration))
	}
	if p.RotateDuration < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rotateDuration", fmt.Errorf("%s is negative", p.RotateDuration))
	}
	return nil
}

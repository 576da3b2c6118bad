package plan

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
)

// Step is a single instruction of a rearrangement plan.
type Step struct {
	action         Action
	itemID         string
	fromContainer  string
	toContainer    string
	reason         string
	newOrientation kernel.Dimension
}

// NewMoveStep builds a step moving an item between two containers.
func NewMoveStep(itemID, fromContainer, toContainer, reason string) (Step, error) {
	if err := errors.Join(
		required("itemID", itemID),
		required("fromContainer", fromContainer),
		required("toContainer", toContainer),
	); err != nil {
		return Step{}, err
	}

	return Step{
		action:        Move,
		itemID:        itemID,
		fromContainer: fromContainer,
		toContainer:   toContainer,
		reason:        reason,
	}, nil
}

// NewRotateStep builds a step turning an item in place to the given orientation.
func NewRotateStep(itemID, containerID string, newOrientation kernel.Dimension, reason string) (Step, error) {
	if err := errors.Join(
		required("itemID", itemID),
		required("containerID", containerID),
		newOrientation.Validate(),
	); err != nil {
		return Step{}, err
	}

	return Step{
		action:         Rotate,
		itemID:         itemID,
		fromContainer:  containerID,
		toContainer:    containerID,
		reason:         reason,
		newOrientation: newOrientation,
	}, nil
}

func (s Step) Action() Action {
	return s.action
}

func (s Step) ItemID() string {
	return s.itemID
}

// FromContainer returns the container the item is taken from.
func (s Step) FromContainer() string {
	return s.fromContainer
}

// ToContainer returns the destination; for rotations it equals FromContainer.
func (s Step) ToContainer() string {
	return s.toContainer
}

func (s Step) Reason() string {
	return s.reason
}

// NewOrientation returns the suggested orientation of a rotate step.
func (s Step) NewOrientation() (kernel.Dimension, bool) {
	if s.action != Rotate {
		return kernel.Dimension{}, false
	}
	return s.newOrientation, true
}

// RearrangementPlan is the ordered list of steps that frees space in a congested
// container, with its estimated execution time.
type RearrangementPlan struct {
	containerID   string
	steps         []Step
	estimatedTime time.Duration
}

// NewRearrangementPlan assembles a plan. Steps are copied.
func NewRearrangementPlan(containerID string, steps []Step, estimatedTime time.Duration) (*RearrangementPlan, error) {
	if err := required("containerID", containerID); err != nil {
		return nil, err
	}
	if estimatedTime < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("estimatedTime", fmt.Errorf("%s is negative", estimatedTime))
	}

	return &RearrangementPlan{
		containerID:   containerID,
		steps:         slices.Clone(steps),
		estimatedTime: estimatedTime,
	}, nil
}

// ContainerID returns the congested container the plan was made for.
func (p *RearrangementPlan) ContainerID() string {
	return p.containerID
}

// Steps returns a copy of the ordered steps.
func (p *RearrangementPlan) Steps() []Step {
	return slices.Clone(p.steps)
}

func (p *RearrangementPlan) EstimatedTime() time.Duration {
	return p.estimatedTime
}

// Moves counts the move steps.
func (p *RearrangementPlan) Moves() int {
	return p.count(Move)
}

// Rotations counts the rotate steps.
func (p *RearrangementPlan) Rotations() int {
	return p.count(Rotate)
}

// IsEmpty reports whether there is nothing to do.
func (p *RearrangementPlan) IsEmpty() bool {
	return len(p.steps) == 0
}

func (p *RearrangementPlan) count(a Action) int {
	n := 0
	for _, s := range p.steps {
		if s.action == a {
			n++
		}
	}
	return n
}

func required(name, v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

package plan

import (
	"fmt"

	"stowage/internal/pkg/errs"
)

// Action is the kind of a rearrangement step.
type Action int

const (
	// UnknownAction is the zero value and never valid.
	UnknownAction Action = iota
	// Move relocates an item to another container.
	Move
	// Rotate turns an item in place, swapping width and height.
	Rotate
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction: "unknown",
		Move:          "move",
		Rotate:        "rotate",
	}
}

// Validate rejects UnknownAction and values outside the enum.
func (a Action) Validate() error {
	if a != Move && a != Rotate {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "unknown"
}

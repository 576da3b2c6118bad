package placement

import (
	"errors"
	"fmt"
	"math"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

// ErrPlacementIsNotConstructed is returned when using a zero Placement.
var ErrPlacementIsNotConstructed = errors.New("Placement must be created via NewPlacement or RestorePlacement constructors")

// sideTolerance absorbs float drift between client-computed corners and item sides.
const sideTolerance = 1e-9

// Placement is an immutable value assigning an item to a container at a position.
// The end corner is always start extended by the item's dimension.
type Placement struct {
	itemID      string
	containerID string
	start       kernel.Coordinates
	end         kernel.Coordinates
	guard       guard.ConstructorGuard
}

// NewPlacement places an item of the given dimension with its footprint starting at start.
//
// Example:
//
//	p, err := placement.NewPlacement("ITEM001", "contA", kernel.Origin(), item.Dimension())
func NewPlacement(itemID, containerID string, start kernel.Coordinates, dimension kernel.Dimension) (Placement, error) {
	if err := dimension.Validate(); err != nil {
		return Placement{}, err
	}
	return RestorePlacement(itemID, containerID, start, start.Extend(dimension))
}

// RestorePlacement rebuilds a placement from stored corners.
func RestorePlacement(itemID, containerID string, start, end kernel.Coordinates) (Placement, error) {
	var errList []error
	if itemID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("itemID"))
	}
	if containerID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("containerID"))
	}
	if start.Width < 0 || start.Depth < 0 || start.Height < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("start", fmt.Errorf("%s has a negative axis", start)))
	}
	if end.Width <= start.Width || end.Depth <= start.Depth || end.Height <= start.Height {
		errList = append(errList, fmt.Errorf("%w: %w", kernel.ErrInvalidGeometry,
			errs.NewValueIsInvalidErrorWithCause("end", fmt.Errorf("%s does not lie beyond %s", end, start))))
	}
	if err := errors.Join(errList...); err != nil {
		return Placement{}, err
	}

	return Placement{
		itemID:      itemID,
		containerID: containerID,
		start:       start,
		end:         end,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (p Placement) ItemID() string {
	return p.itemID
}

func (p Placement) ContainerID() string {
	return p.containerID
}

// Start returns the corner closest to the origin.
func (p Placement) Start() kernel.Coordinates {
	return p.start
}

// End returns the corner opposite to Start.
func (p Placement) End() kernel.Coordinates {
	return p.end
}

// Dimension returns the size of the placed footprint.
func (p Placement) Dimension() kernel.Dimension {
	return kernel.Dimension{
		Width:  p.end.Width - p.start.Width,
		Depth:  p.end.Depth - p.start.Depth,
		Height: p.end.Height - p.start.Height,
	}
}

// Fits reports whether the footprint is d, upright or turned about the depth axis.
func (p Placement) Fits(d kernel.Dimension) bool {
	return sameSize(p.Dimension(), d) || sameSize(p.Dimension(), d.Rotated())
}

// Volume returns the volume of the placed footprint.
func (p Placement) Volume() float64 {
	return p.Dimension().Volume()
}

// SharesContainerWith reports whether both placements are in the same container.
func (p Placement) SharesContainerWith(other Placement) bool {
	return p.containerID == other.containerID
}

// Blocks reports whether p sits in front of other in the same container, so other
// cannot be taken out before p is moved. Only the depth axis is considered.
func (p Placement) Blocks(other Placement) bool {
	return p.itemID != other.itemID && p.SharesContainerWith(other) && p.start.IsInFrontOf(other.start)
}

func (p Placement) Validate() error {
	return p.guard.Validate(ErrPlacementIsNotConstructed)
}

func sameSize(a, b kernel.Dimension) bool {
	return math.Abs(a.Width-b.Width) <= sideTolerance &&
		math.Abs(a.Depth-b.Depth) <= sideTolerance &&
		math.Abs(a.Height-b.Height) <= sideTolerance
}

func (p Placement) String() string {
	return fmt.Sprintf("%s in %s %s-%s", p.itemID, p.containerID, p.start, p.end)
}

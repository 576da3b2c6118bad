package storage

import (
	"errors"
	"fmt"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var (
	// ErrCapacityExceeded indicates that a reservation would take the available
	// volume of a container below zero.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrContainerIsNotConstructed indicates that the Container was not
	// initialized through NewContainer or RestoreContainer.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer or RestoreContainer constructors")
)

// Container is a storage box with an open face at depth 0. It is an aggregate root
// tracking the volume still free for new items.
//
// Key business rules:
//   - id and zone are required
//   - the dimension is a validated kernel.Dimension
//   - 0 <= available volume <= total volume at all times
//   - reservations that would overdraw the container fail with ErrCapacityExceeded
//     and leave the container untouched
//
// Example usage:
//
//	dim, _ := kernel.NewDimension(100, 85, 200)
//	c, err := storage.NewContainer("contA", "Crew Quarters", dim)
//	if err != nil {
//	    return err
//	}
//
//	if c.Fits(itemVolume) {
//	    err = c.Reserve(itemVolume)
//	}
type Container struct {
	// id uniquely identifies the container
	id string

	// zone is the station area the container is mounted in
	zone string

	// dimension is the interior size of the container
	dimension kernel.Dimension

	// availableVolume is the interior volume not yet reserved by placed items
	availableVolume float64

	guard guard.ConstructorGuard
}

// NewContainer creates an empty container whose available volume equals its total volume.
func NewContainer(id string, zone string, dimension kernel.Dimension) (*Container, error) {
	c := &Container{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setZone(zone), c.setDimension(dimension)); err != nil {
		return nil, err
	}

	c.availableVolume = c.TotalVolume()
	return c, nil
}

// RestoreContainer reconstructs a container from persistent storage, keeping the
// available volume it had when it was saved.
//
// Business Rules:
//   - the same rules as NewContainer apply
//   - availableVolume must lie in [0..total volume]
//
// Examples:
//
//	c, err := storage.RestoreContainer("contB", "Medical Bay", dim, 125000)
//	if err != nil {
//	    return fmt.Errorf("restoration failed: %w", err)
//	}
func RestoreContainer(id string, zone string, dimension kernel.Dimension, availableVolume float64) (*Container, error) {
	c := &Container{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setZone(zone), c.setDimension(dimension)); err != nil {
		return nil, err
	}

	if err := c.setAvailableVolume(availableVolume); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares containers by identity.
func (c *Container) IsEqual(other *Container) bool {
	return other != nil && c.id == other.id
}

// ID returns the unique identifier of the container.
func (c *Container) ID() string {
	return c.id
}

// Zone returns the station area the container belongs to.
func (c *Container) Zone() string {
	return c.zone
}

// Dimension returns the interior size of the container.
func (c *Container) Dimension() kernel.Dimension {
	return c.dimension
}

// TotalVolume returns the interior volume of the container.
func (c *Container) TotalVolume() float64 {
	return c.dimension.Volume()
}

// AvailableVolume returns the volume not reserved by placed items.
func (c *Container) AvailableVolume() float64 {
	return c.availableVolume
}

// UsedVolume returns the reserved volume.
func (c *Container) UsedVolume() float64 {
	return c.TotalVolume() - c.availableVolume
}

// Fits reports whether a reservation of the given volume would succeed.
// Volume-only feasibility: the spatial arrangement of items inside is not checked.
func (c *Container) Fits(volume float64) bool {
	return volume > 0 && volume <= c.availableVolume
}

// Reserve takes volume from the available volume.
//
// Returns:
//   - errs.ErrValueIsInvalid if volume is not positive
//   - ErrCapacityExceeded if the container does not have enough free volume
//
// Example:
//
//	err := c.Reserve(item.Volume())
//	if errors.Is(err, storage.ErrCapacityExceeded) {
//	    // try another container
//	}
func (c *Container) Reserve(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume", fmt.Errorf("%g is not greater than 0", volume))
	}

	if volume > c.availableVolume {
		return fmt.Errorf("%w: container %s has %g available, %g requested",
			ErrCapacityExceeded, c.id, c.availableVolume, volume)
	}

	c.availableVolume -= volume
	return nil
}

// Release gives volume back to the container. Releasing more than was reserved
// is rejected with errs.ErrValueIsOutOfRange.
func (c *Container) Release(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume", fmt.Errorf("%g is not greater than 0", volume))
	}

	if volume > c.UsedVolume() {
		return errs.NewValueIsOutOfRangeError("volume", volume, 0, c.UsedVolume())
	}

	c.availableVolume += volume
	return nil
}

// Empty restores the full interior volume, as when the container leaves the station.
func (c *Container) Empty() {
	c.availableVolume = c.TotalVolume()
}

// Clone returns an independent copy used as a planning working copy.
func (c *Container) Clone() *Container {
	clone := *c
	return &clone
}

// Validate checks the container was created through a constructor.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

func (c *Container) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}

	c.id = id
	return nil
}

func (c *Container) setZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("zone")
	}

	c.zone = zone
	return nil
}

func (c *Container) setDimension(dimension kernel.Dimension) error {
	if err := dimension.Validate(); err != nil {
		return err
	}

	c.dimension = dimension
	return nil
}

func (c *Container) setAvailableVolume(availableVolume float64) error {
	total := c.TotalVolume()
	if availableVolume < 0 || availableVolume > total {
		return errs.NewValueIsOutOfRangeError("availableVolume", availableVolume, 0, total)
	}

	c.availableVolume = availableVolume
	return nil
}

package kernel

import (
	"errors"
	"fmt"

	"stowage/internal/pkg/errs"
)

// ErrInvalidGeometry is returned for dimensions with a non-positive side.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Dimension is an ordered (width, depth, height) triple in centimetres.
//
// A Dimension may be built from untrusted input; callers check it with Validate
// before relying on Volume. Aggregates only ever hold validated dimensions.
type Dimension struct {
	Width  float64
	Depth  float64
	Height float64
}

// NewDimension creates a validated Dimension.
//
// Example:
//
//	dim, err := kernel.NewDimension(10, 10, 20)
//	if errors.Is(err, kernel.ErrInvalidGeometry) {
//	    // reject the item
//	}
//	fmt.Println(dim.Volume()) // 2000
func NewDimension(width, depth, height float64) (Dimension, error) {
	d := Dimension{Width: width, Depth: depth, Height: height}
	if err := d.Validate(); err != nil {
		return Dimension{}, err
	}
	return d, nil
}

// Validate returns an error wrapping ErrInvalidGeometry when any side is not positive.
func (d Dimension) Validate() error {
	return errors.Join(
		positiveSide("width", d.Width),
		positiveSide("depth", d.Depth),
		positiveSide("height", d.Height),
	)
}

// Volume returns width*depth*height.
func (d Dimension) Volume() float64 {
	return d.Width * d.Depth * d.Height
}

// Rotated returns the dimension turned about the depth axis (width and height swapped).
func (d Dimension) Rotated() Dimension {
	return Dimension{Width: d.Height, Depth: d.Depth, Height: d.Width}
}

// IsSquareFaced reports whether rotating about the depth axis changes nothing.
func (d Dimension) IsSquareFaced() bool {
	return d.Width == d.Height
}

func (d Dimension) String() string {
	return fmt.Sprintf("width: %g, depth: %g, height: %g", d.Width, d.Depth, d.Height)
}

func positiveSide(name string, v float64) error {
	if v > 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidGeometry,
		errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not greater than 0", v)))
}

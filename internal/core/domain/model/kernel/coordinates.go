package kernel

import "fmt"

// Coordinates locate a corner inside a container relative to its origin corner
// (width = 0, depth = 0 on the open face, height = 0 on the floor).
type Coordinates struct {
	Width  float64
	Depth  float64
	Height float64
}

// Origin returns the origin corner of a container.
func Origin() Coordinates {
	return Coordinates{}
}

// Extend returns the opposite corner of an axis-aligned box of size d starting at c.
func (c Coordinates) Extend(d Dimension) Coordinates {
	return Coordinates{
		Width:  c.Width + d.Width,
		Depth:  c.Depth + d.Depth,
		Height: c.Height + d.Height,
	}
}

// IsInFrontOf reports whether c sits strictly closer to the open face than other.
// Equal depths are side by side and never in front of each other.
func (c Coordinates) IsInFrontOf(other Coordinates) bool {
	return c.Depth < other.Depth
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.Width, c.Depth, c.Height)
}

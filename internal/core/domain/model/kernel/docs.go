// Package kernel provides the geometry primitives shared by the stowage domain.
//
// The package includes:
//   - Dimension: width, depth and height of an item or container, with its volume
//   - Coordinates: a corner inside a container, measured from the origin corner
//
// Depth is the access axis: the container is opened on its depth = 0 face and
// items further along depth sit behind the ones in front of them.
//
// The values are immutable and safe for concurrent use.
package kernel

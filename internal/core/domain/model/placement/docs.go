// Package placement records where an item sits inside a container: the start
// corner of its footprint and the opposite end corner.
package placement

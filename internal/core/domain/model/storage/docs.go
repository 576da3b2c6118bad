// Package storage models the station's storage containers.
//
// A Container is an open-faced box fixed to a zone of the station. It tracks
// how much of its interior volume is still free and enforces that reservations
// never overdraw it. Containers are the units the placement engine chooses
// between and the places the rearrangement planner moves items into.
package storage

// Package services implements the cargo allocation engine: domain services that
// work across items, containers and placements of a station snapshot.
//
// The package includes:
//   - PlacementEngine: assigns items to containers by priority and zone preference
//   - RetrievalCostModel: counts the items blocking access to a stowed item
//   - WasteSelectionPlanner: chooses the waste that fits an undocking container
//   - RearrangementPlanner: proposes moves and rotations for a congested container
//   - WasteInspector: flags expired and depleted items as waste
//
// Every service is a pure function of its input snapshot. Operations that consume
// capacity do so on working copies returned to the caller; the caller's aggregates
// are never mutated, and nothing here performs I/O or logs.
package services

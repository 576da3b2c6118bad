// Package queries contains the read use cases of the stowage service.
//
// Search and waste listing read straight from the database with SQL shaped for
// the response. The rearrangement query loads aggregates through the
// repositories because the planner works on domain objects.
package queries

// Package cargo contains the Item aggregate: a stowable piece of cargo with its
// geometry, mass, priority, zone preference and consumption state.
//
// An item becomes waste when it expires or runs out of uses. The waste mark is
// monotonic: once set it keeps its original reason and timestamp for the rest of
// the planning cycle, and no operation clears it.
package cargo

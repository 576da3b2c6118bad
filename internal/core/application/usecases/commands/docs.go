// Package commands contains the write use cases of the stowage service.
//
// Every command is a value built by its New...Command constructor, which
// validates the input; the matching handler loads a snapshot through a unit of
// work, runs the allocation engine on it and persists the outcome in the same
// transaction.
package commands

package services

import "errors"

var (
	// ErrContainerNotFound is returned when an operation names a container that is
	// not part of the supplied snapshot.
	ErrContainerNotFound = errors.New("container not found")

	// ErrItemNotPlaced is returned when a retrieval cost is requested for an item
	// without an active placement.
	ErrItemNotPlaced = errors.New("item not placed")

	// ErrDuplicateItem is reported for a placement request repeating an item id
	// already requested in the same call.
	ErrDuplicateItem = errors.New("item is requested more than once")
)

package ports

import (
	"context"

	"stowage/internal/core/domain/model/cargo"
)

// ItemRepository persists cargo.Item aggregates.
//
// Get returns an error wrapping errs.ErrObjectNotFound when the item does not exist.
type ItemRepository interface {
	Add(ctx context.Context, item *cargo.Item) error

	Update(ctx context.Context, item *cargo.Item) error

	Delete(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (*cargo.Item, error)

	// GetByIDs returns the items that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []string) ([]*cargo.Item, error)

	// GetByContainer returns the items with an active placement in the container.
	GetByContainer(ctx context.Context, containerID string) ([]*cargo.Item, error)

	// GetAllUsable returns every item not flagged as waste.
	GetAllUsable(ctx context.Context) ([]*cargo.Item, error)

	// GetAllWaste returns every item flagged as waste, oldest mark first.
	GetAllWaste(ctx context.Context) ([]*cargo.Item, error)
}

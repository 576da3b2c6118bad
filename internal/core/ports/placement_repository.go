package ports

import (
	"context"

	"stowage/internal/core/domain/model/placement"
)

// PlacementRepository stores the single active placement of each item.
type PlacementRepository interface {
	// Save stores p, replacing any previous placement of the same item.
	Save(ctx context.Context, p placement.Placement) error

	Delete(ctx context.Context, itemID string) error

	GetByItem(ctx context.Context, itemID string) (placement.Placement, error)

	GetByContainer(ctx context.Context, containerID string) ([]placement.Placement, error)

	GetAll(ctx context.Context) ([]placement.Placement, error)
}

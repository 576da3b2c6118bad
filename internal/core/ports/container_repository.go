package ports

import (
	"context"

	"stowage/internal/core/domain/model/storage"
)

// ContainerRepository persists storage.Container aggregates.
type ContainerRepository interface {
	Add(ctx context.Context, container *storage.Container) error

	Update(ctx context.Context, container *storage.Container) error

	Get(ctx context.Context, id string) (*storage.Container, error)

	// GetAll returns every container ordered by id.
	GetAll(ctx context.Context) ([]*storage.Container, error)

	// GetForUpdate is Get that also locks the container row until the
	// transaction ends.
	GetForUpdate(ctx context.Context, id string) (*storage.Container, error)

	// GetAllForUpdate is GetAll that also locks every row, in id order.
	GetAllForUpdate(ctx context.Context) ([]*storage.Container, error)
}

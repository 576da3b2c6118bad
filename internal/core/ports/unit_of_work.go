package ports

import (
	"context"
)

// UnitOfWorkFactory opens a fresh unit of work per use case invocation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups repository operations into one database transaction.
// Repositories obtained after Begin share the transaction; before Begin they
// read outside of it.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	ItemRepository() ItemRepository

	ContainerRepository() ContainerRepository

	PlacementRepository() PlacementRepository

	ReturnManifestRepository() ReturnManifestRepository
}

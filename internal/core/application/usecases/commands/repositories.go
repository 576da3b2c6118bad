package commands

import (
	"context"
	"slices"

	"stowage/internal/core/domain/model/storage"
	"stowage/internal/core/ports"
)

type (
	// TxManager manages transaction boundaries for atomic operations.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	PlacementRepoFactory interface {
		PlacementRepository() ports.PlacementRepository
	}

	ReturnManifestRepoFactory interface {
		ReturnManifestRepository() ports.ReturnManifestRepository
	}

	// ItemUoW covers use cases that only touch items.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// UoW covers use cases that move items between containers.
	UoW interface {
		TxManager
		ItemRepoFactory
		ContainerRepoFactory
		PlacementRepoFactory
		ReturnManifestRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// lockContainers loads the containers for update in ascending id order, the
// order GetAllForUpdate locks in, so concurrent writers cannot deadlock.
// Repeated and blank ids are ignored.
func lockContainers(ctx context.Context, repo ports.ContainerRepository, ids ...string) (map[string]*storage.Container, error) {
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	slices.Sort(unique)

	locked := make(map[string]*storage.Container, len(unique))
	for _, id := range unique {
		c, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = c
	}
	return locked, nil
}

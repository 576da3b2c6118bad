package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	postgres_adapter "stowage/internal/adapters/out/postgres"
	"stowage/internal/adapters/out/postgres/pgtest"
	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/core/ports"
	"stowage/internal/pkg/errs"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres_adapter.Models()...)
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.ItemRepository())
	suite.NotNil(uow1.ContainerRepository())
	suite.NotNil(uow1.PlacementRepository())
	suite.NotNil(uow1.ReturnManifestRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Commit(ctx), "nothing left to commit")
	suite.Require().Error(uow.Rollback(ctx), "nothing left to roll back")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAllRepositories() {
	ctx := context.Background()
	item, container, p := suite.newStowedItem()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, item))
	suite.Require().NoError(uow.ContainerRepository().Add(ctx, container))
	suite.Require().NoError(uow.PlacementRepository().Save(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]string{"X", "contA"}, uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs())

	fresh := suite.factory.Create()
	got, err := fresh.PlacementRepository().GetByItem(ctx, "X")
	suite.Require().NoError(err)
	suite.Equal("contA", got.ContainerID())

	stored, err := fresh.ContainerRepository().Get(ctx, "contA")
	suite.Require().NoError(err)
	suite.InDelta(container.AvailableVolume(), stored.AvailableVolume(), 1e-9)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllRepositories() {
	ctx := context.Background()
	item, container, p := suite.newStowedItem()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, item))
	suite.Require().NoError(uow.ContainerRepository().Add(ctx, container))
	suite.Require().NoError(uow.PlacementRepository().Save(ctx, p))

	_, err := uow.ItemRepository().Get(ctx, "X")
	suite.Require().NoError(err, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.ItemRepository().Get(ctx, "X")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.ContainerRepository().Get(ctx, "contA")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.PlacementRepository().GetByItem(ctx, "X")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_WaitsForLockHolder() {
	ctx := context.Background()
	_, container, _ := suite.newStowedItem()
	suite.Require().NoError(suite.factory.Create().ContainerRepository().Add(ctx, container))
	initial := container.AvailableVolume()

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	all, err := holder.ContainerRepository().GetAllForUpdate(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)

	observed := make(chan float64, 1)
	go func() {
		waiter := suite.factory.Create()
		if err := waiter.Begin(ctx); err != nil {
			observed <- -1
			return
		}
		defer func() { _ = waiter.Rollback(ctx) }()
		c, err := waiter.ContainerRepository().GetForUpdate(ctx, "contA")
		if err != nil {
			observed <- -1
			return
		}
		observed <- c.AvailableVolume()
	}()

	select {
	case <-observed:
		suite.Fail("second reader was not blocked by the row lock")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(all[0].Reserve(1000))
	suite.Require().NoError(holder.ContainerRepository().Update(ctx, all[0]))
	suite.Require().NoError(holder.Commit(ctx))

	select {
	case got := <-observed:
		suite.InDelta(initial-1000, got, 1e-9)
	case <-time.After(10 * time.Second):
		suite.Fail("second reader never acquired the lock")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_ConcurrentReservationsAreNotLost() {
	ctx := context.Background()
	_, container, _ := suite.newStowedItem()
	suite.Require().NoError(suite.factory.Create().ContainerRepository().Add(ctx, container))
	initial := container.AvailableVolume()

	const writers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.reserve(ctx, "contA", 500)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	stored, err := suite.factory.Create().ContainerRepository().Get(ctx, "contA")
	suite.Require().NoError(err)
	suite.InDelta(initial-writers*500, stored.AvailableVolume(), 1e-9)
}

func (suite *UnitOfWorkIntegrationTestSuite) reserve(ctx context.Context, containerID string, volume float64) error {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	c, err := uow.ContainerRepository().GetForUpdate(ctx, containerID)
	if err != nil {
		return err
	}
	if err = c.Reserve(volume); err != nil {
		return err
	}
	if err = uow.ContainerRepository().Update(ctx, c); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) newStowedItem() (*cargo.Item, *storage.Container, placement.Placement) {
	dim, err := kernel.NewDimension(10, 10, 20)
	suite.Require().NoError(err)
	item, err := cargo.NewItem("X", "Food Packet", dim, 0.5, 80, "Crew Quarters", nil, nil)
	suite.Require().NoError(err)

	containerDim, err := kernel.NewDimension(100, 85, 200)
	suite.Require().NoError(err)
	container, err := storage.NewContainer("contA", "Crew Quarters", containerDim)
	suite.Require().NoError(err)
	suite.Require().NoError(container.Reserve(item.Volume()))

	p, err := placement.NewPlacement("X", "contA", kernel.Origin(), dim)
	suite.Require().NoError(err)
	return item, container, p
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

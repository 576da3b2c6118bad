package queries_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	postgres_adapter "stowage/internal/adapters/out/postgres"
	"stowage/internal/adapters/out/postgres/pgtest"
	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/core/ports"
)

// databaseSuite runs a PostgreSQL container per suite and empties it per test.
type databaseSuite struct {
	suite.Suite
	database   *pgtest.Database
	uowFactory ports.UnitOfWorkFactory
}

func (s *databaseSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres_adapter.Models()...)
	s.Require().NoError(err)
	s.database = database
	s.uowFactory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (s *databaseSuite) SetupTest() {
	s.Require().NoError(s.database.Truncate())
}

func (s *databaseSuite) TearDownSuite() {
	s.Require().NoError(s.database.Terminate(context.Background()))
}

func (s *databaseSuite) addContainer(id, zone string, w, d, h float64) *storage.Container {
	dim, err := kernel.NewDimension(w, d, h)
	s.Require().NoError(err)
	c, err := storage.NewContainer(id, zone, dim)
	s.Require().NoError(err)
	s.Require().NoError(s.uowFactory.Create().ContainerRepository().Add(context.Background(), c))
	return c
}

func (s *databaseSuite) addItem(id, name string, w, d, h float64, priority int) *cargo.Item {
	dim, err := kernel.NewDimension(w, d, h)
	s.Require().NoError(err)
	item, err := cargo.NewItem(id, name, dim, 1, priority, "Lab", nil, nil)
	s.Require().NoError(err)
	s.Require().NoError(s.uowFactory.Create().ItemRepository().Add(context.Background(), item))
	return item
}

// stow places item at depth in container and reserves its volume.
func (s *databaseSuite) stow(item *cargo.Item, container *storage.Container, depth float64) {
	ctx := context.Background()
	uow := s.uowFactory.Create()

	p, err := placement.NewPlacement(item.ID(), container.ID(), kernel.Coordinates{Depth: depth}, item.Dimension())
	s.Require().NoError(err)
	s.Require().NoError(uow.PlacementRepository().Save(ctx, p))
	s.Require().NoError(container.Reserve(item.Volume()))
	s.Require().NoError(uow.ContainerRepository().Update(ctx, container))
}

func (s *databaseSuite) markWaste(item *cargo.Item, reason cargo.WasteReason, at time.Time) {
	s.Require().NoError(item.MarkWaste(reason, at))
	s.Require().NoError(s.uowFactory.Create().ItemRepository().Update(context.Background(), item))
}

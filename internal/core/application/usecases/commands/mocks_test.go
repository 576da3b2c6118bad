package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/core/ports"
)

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, item *cargo.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *cargo.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id string) (*cargo.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Item), args.Error(1)
}

func (m *MockItemRepository) GetByIDs(ctx context.Context, ids []string) ([]*cargo.Item, error) {
	return m.items(m.Called(ctx, ids))
}

func (m *MockItemRepository) GetByContainer(ctx context.Context, containerID string) ([]*cargo.Item, error) {
	return m.items(m.Called(ctx, containerID))
}

func (m *MockItemRepository) GetAllUsable(ctx context.Context) ([]*cargo.Item, error) {
	return m.items(m.Called(ctx))
}

func (m *MockItemRepository) GetAllWaste(ctx context.Context) ([]*cargo.Item, error) {
	return m.items(m.Called(ctx))
}

func (m *MockItemRepository) items(args mock.Arguments) ([]*cargo.Item, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cargo.Item), args.Error(1)
}

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Add(ctx context.Context, c *storage.Container) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, c *storage.Container) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockContainerRepository) Get(ctx context.Context, id string) (*storage.Container, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Container), args.Error(1)
}

func (m *MockContainerRepository) GetAll(ctx context.Context) ([]*storage.Container, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Container), args.Error(1)
}

func (m *MockContainerRepository) GetForUpdate(ctx context.Context, id string) (*storage.Container, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Container), args.Error(1)
}

func (m *MockContainerRepository) GetAllForUpdate(ctx context.Context) ([]*storage.Container, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Container), args.Error(1)
}

type MockPlacementRepository struct{ mock.Mock }

func (m *MockPlacementRepository) Save(ctx context.Context, p placement.Placement) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPlacementRepository) Delete(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *MockPlacementRepository) GetByItem(ctx context.Context, itemID string) (placement.Placement, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(placement.Placement), args.Error(1)
}

func (m *MockPlacementRepository) GetByContainer(ctx context.Context, containerID string) ([]placement.Placement, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]placement.Placement), args.Error(1)
}

func (m *MockPlacementRepository) GetAll(ctx context.Context) ([]placement.Placement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]placement.Placement), args.Error(1)
}

type MockReturnManifestRepository struct{ mock.Mock }

func (m *MockReturnManifestRepository) Add(ctx context.Context, manifest *plan.ReturnManifest) error {
	return m.Called(ctx, manifest).Error(0)
}

func (m *MockReturnManifestRepository) Update(ctx context.Context, manifest *plan.ReturnManifest) error {
	return m.Called(ctx, manifest).Error(0)
}

func (m *MockReturnManifestRepository) Get(ctx context.Context, id uuid.UUID) (*plan.ReturnManifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.ReturnManifest), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	return m.Called().Get(0).(ports.ContainerRepository)
}

func (m *MockUoW) PlacementRepository() ports.PlacementRepository {
	return m.Called().Get(0).(ports.PlacementRepository)
}

func (m *MockUoW) ReturnManifestRepository() ports.ReturnManifestRepository {
	return m.Called().Get(0).(ports.ReturnManifestRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	return m.Called().Get(0).(commands.ItemUoW)
}

// fixture wires a MockUoW with all repositories; every repository accessor may be
// called any number of times.
type fixture struct {
	uow        *MockUoW
	factory    *MockUoWFactory
	items      *MockItemRepository
	containers *MockContainerRepository
	placements *MockPlacementRepository
	manifests  *MockReturnManifestRepository
}

func newFixture() *fixture {
	f := &fixture{
		uow:        new(MockUoW),
		factory:    new(MockUoWFactory),
		items:      new(MockItemRepository),
		containers: new(MockContainerRepository),
		placements: new(MockPlacementRepository),
		manifests:  new(MockReturnManifestRepository),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("ItemRepository").Return(f.items).Maybe()
	f.uow.On("ContainerRepository").Return(f.containers).Maybe()
	f.uow.On("PlacementRepository").Return(f.placements).Maybe()
	f.uow.On("ReturnManifestRepository").Return(f.manifests).Maybe()
	return f
}

func (f *fixture) expectTx(ctx context.Context, commit bool) {
	f.uow.On("Begin", ctx).Return(nil).Once()
	if commit {
		f.uow.On("Commit", ctx).Return(nil).Once()
	}
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.items.AssertExpectations(t)
	f.containers.AssertExpectations(t)
	f.placements.AssertExpectations(t)
	f.manifests.AssertExpectations(t)
}

func newTestItem(t *testing.T, id string, w, d, h float64, priority int, usageLimit *int) *cargo.Item {
	t.Helper()
	dim, err := kernel.NewDimension(w, d, h)
	require.NoError(t, err)
	item, err := cargo.NewItem(id, "item "+id, dim, 1, priority, "Lab", nil, usageLimit)
	require.NoError(t, err)
	return item
}

func newTestContainer(t *testing.T, id, zone string, available float64) *storage.Container {
	t.Helper()
	dim, err := kernel.NewDimension(10, 10, 10)
	require.NoError(t, err)
	c, err := storage.RestoreContainer(id, zone, dim, available)
	require.NoError(t, err)
	return c
}

func newTestPlacement(t *testing.T, itemID, containerID string, depth float64, dim kernel.Dimension) placement.Placement {
	t.Helper()
	p, err := placement.NewPlacement(itemID, containerID, kernel.Coordinates{Depth: depth}, dim)
	require.NoError(t, err)
	return p
}

func intPtr(v int) *int {
	return &v
}

func date(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

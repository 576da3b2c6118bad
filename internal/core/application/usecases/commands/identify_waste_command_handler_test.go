package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
)

func newExpiringItem(t *testing.T, id string, expiry time.Time) *cargo.Item {
	t.Helper()
	dim, err := kernel.NewDimension(1, 1, 1)
	require.NoError(t, err)
	item, err := cargo.NewItem(id, "item "+id, dim, 1, 50, "Lab", &expiry, nil)
	require.NoError(t, err)
	return item
}

func newItemFixture() (*fixture, *MockItemUoWFactory) {
	f := newFixture()
	f.factory = new(MockUoWFactory)
	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	return f, factory
}

func TestIdentifyWasteCommandHandler_Handle(t *testing.T) {
	t.Run("should flag expired and depleted items and store only them", func(t *testing.T) {
		ctx := t.Context()
		expired := newExpiringItem(t, "milk", date(1))
		fresh := newExpiringItem(t, "bread", date(30))
		depleted := newTestItem(t, "wipes", 1, 1, 1, 50, intPtr(0))

		f, factory := newItemFixture()
		f.expectTx(ctx, true)
		f.items.On("GetAllUsable", ctx).Return([]*cargo.Item{expired, fresh, depleted}, nil).Once()
		f.items.On("Update", ctx, expired).Return(nil).Once()
		f.items.On("Update", ctx, depleted).Return(nil).Once()

		cmd, err := commands.NewIdentifyWasteCommand(date(10))
		require.NoError(t, err)

		findings, err := commands.NewIdentifyWasteCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, findings, 2)
		assert.Equal(t, "milk", findings[0].ItemID)
		assert.Equal(t, cargo.Expired, findings[0].Reason)
		assert.Equal(t, "wipes", findings[1].ItemID)
		assert.Equal(t, cargo.OutOfUses, findings[1].Reason)
		assert.False(t, fresh.IsWaste())
		factory.AssertExpectations(t)
		f.assertExpectations(t)
	})

	t.Run("should not commit when an update fails", func(t *testing.T) {
		ctx := t.Context()
		expired := newExpiringItem(t, "milk", date(1))

		f, factory := newItemFixture()
		f.expectTx(ctx, false)
		f.items.On("GetAllUsable", ctx).Return([]*cargo.Item{expired}, nil).Once()
		f.items.On("Update", ctx, expired).Return(errors.New("update error")).Once()

		cmd, _ := commands.NewIdentifyWasteCommand(date(10))
		_, err := commands.NewIdentifyWasteCommandHandler(factory).Handle(ctx, cmd)

		require.EqualError(t, err, "update error")
		f.assertExpectations(t)
	})

	t.Run("should reject a zero time", func(t *testing.T) {
		_, err := commands.NewIdentifyWasteCommand(time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

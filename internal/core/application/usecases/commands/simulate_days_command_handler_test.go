package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/pkg/errs"
)

func TestSimulateDaysCommandHandler_Handle(t *testing.T) {
	t.Run("should expire items before applying the day's usages", func(t *testing.T) {
		ctx := t.Context()
		milk := newExpiringItem(t, "milk", date(2))
		wipes := newTestItem(t, "wipes", 1, 1, 1, 50, intPtr(2))
		tool := newTestItem(t, "tool", 1, 1, 1, 50, nil)

		f, factory := newItemFixture()
		f.expectTx(ctx, true)
		f.items.On("GetAllUsable", ctx).Return([]*cargo.Item{milk, wipes, tool}, nil).Once()
		f.items.On("Update", ctx, milk).Return(nil).Once()
		f.items.On("Update", ctx, wipes).Return(nil).Once()

		cmd, err := commands.NewSimulateDaysCommand(date(1), 3, []commands.ItemUsage{
			{ItemID: "wipes", Uses: 1},
			{ItemID: "ghost", Uses: 1},
		})
		require.NoError(t, err)

		result, err := commands.NewSimulateDaysCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 3, result.DaysSimulated)
		assert.Equal(t, date(4), result.NewDate)
		assert.Equal(t, []commands.DayEvent{{Day: 2, ItemID: "milk", Name: "item milk"}}, result.Expired)
		assert.Equal(t, []commands.DayEvent{{Day: 2, ItemID: "wipes", Name: "item wipes"}}, result.Depleted)
		require.Len(t, result.Used, 2)
		assert.Equal(t, 1, result.Used[0].Day)
		assert.Equal(t, 1, *result.Used[0].RemainingUses)
		assert.Equal(t, 2, result.Used[1].Day)
		assert.Equal(t, 0, *result.Used[1].RemainingUses)
		assert.False(t, tool.IsWaste())
		f.assertExpectations(t)
	})

	t.Run("should skip the store when nothing changed", func(t *testing.T) {
		ctx := t.Context()
		tool := newTestItem(t, "tool", 1, 1, 1, 50, nil)

		f, factory := newItemFixture()
		f.expectTx(ctx, true)
		f.items.On("GetAllUsable", ctx).Return([]*cargo.Item{tool}, nil).Once()

		cmd, _ := commands.NewSimulateDaysCommand(date(1), 1, nil)
		result, err := commands.NewSimulateDaysCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Empty(t, result.Used)
		assert.Empty(t, result.Expired)
		f.assertExpectations(t)
	})
}

func TestNewSimulateDaysCommand(t *testing.T) {
	tests := map[string]struct {
		start  time.Time
		days   int
		usages []commands.ItemUsage
		err    error
	}{
		"zero start":     {days: 1, err: errs.ErrValueIsRequired},
		"no days":        {start: date(1), days: 0, err: errs.ErrValueIsOutOfRange},
		"too many days":  {start: date(1), days: commands.MaxSimulatedDays + 1, err: errs.ErrValueIsOutOfRange},
		"blank usage id": {start: date(1), days: 1, usages: []commands.ItemUsage{{Uses: 1}}, err: errs.ErrValueIsRequired},
		"zero uses":      {start: date(1), days: 1, usages: []commands.ItemUsage{{ItemID: "X"}}, err: errs.ErrValueIsInvalid},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewSimulateDaysCommand(tt.start, tt.days, tt.usages)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("should count the days up to a target date", func(t *testing.T) {
		cmd, err := commands.NewSimulateUntilCommand(date(1), date(8), nil)
		require.NoError(t, err)
		assert.Equal(t, 7, cmd.Days())
	})

	t.Run("should accept the longest allowed simulation", func(t *testing.T) {
		cmd, err := commands.NewSimulateDaysCommand(date(1), commands.MaxSimulatedDays, nil)
		require.NoError(t, err)
		assert.Equal(t, commands.MaxSimulatedDays, cmd.Days())
	})

	t.Run("should refuse a target date too far ahead", func(t *testing.T) {
		_, err := commands.NewSimulateUntilCommand(date(1), date(1).AddDate(20, 0, 0), nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should count calendar days from a mid-day start", func(t *testing.T) {
		cmd, err := commands.NewSimulateUntilCommand(date(1).Add(9*time.Hour), date(3), nil)
		require.NoError(t, err)
		assert.Equal(t, 2, cmd.Days())
	})
}

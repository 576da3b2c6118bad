package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/plan"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/core/domain/services"
)

func TestRearrangementPlanner_Plan(t *testing.T) {
	planner := services.NewRearrangementPlanner(services.DefaultRearrangementPolicy())
	box := kernel.Dimension{Width: 4, Depth: 5, Height: 2}

	t.Run("should move a single low priority item without rotating it", func(t *testing.T) {
		item := newItem(t, "low", box, 1, 20)
		dest := newContainer(t, "B", "lab", 500)

		p, err := planner.Plan("A", []*cargo.Item{item}, []*storage.Container{dest})

		require.NoError(t, err)
		require.Len(t, p.Steps(), 1)
		step := p.Steps()[0]
		assert.Equal(t, plan.Move, step.Action())
		assert.Equal(t, "low", step.ItemID())
		assert.Equal(t, "A", step.FromContainer())
		assert.Equal(t, "B", step.ToContainer())
		assert.Contains(t, step.Reason(), "Make space for high priority items")
		assert.Equal(t, 1, p.Moves())
		assert.Equal(t, 0, p.Rotations())
		assert.Equal(t, 10*time.Minute, p.EstimatedTime())
		assert.InDelta(t, 500.0, dest.AvailableVolume(), 0, "input containers stay untouched")
	})

	t.Run("should rotate items that stay", func(t *testing.T) {
		high := newItem(t, "high", box, 1, 80)
		square := newItem(t, "square", kernel.Dimension{Width: 3, Depth: 5, Height: 3}, 1, 90)

		p, err := planner.Plan("A", []*cargo.Item{high, square}, nil)

		require.NoError(t, err)
		require.Len(t, p.Steps(), 1)
		step := p.Steps()[0]
		assert.Equal(t, plan.Rotate, step.Action())
		assert.Equal(t, "high", step.ItemID())
		orientation, ok := step.NewOrientation()
		require.True(t, ok)
		assert.Equal(t, kernel.Dimension{Width: 2, Depth: 5, Height: 4}, orientation)
		assert.Equal(t, 5*time.Minute, p.EstimatedTime())
	})

	t.Run("should move least important first and deduct destination volume", func(t *testing.T) {
		// volume 40 each
		a := newItem(t, "p30", box, 1, 30)
		b := newItem(t, "p10", box, 1, 10)
		c := newItem(t, "p20", box, 1, 20)
		big := newContainer(t, "big", "lab", 90)
		small := newContainer(t, "small", "lab", 45)

		p, err := planner.Plan("A", []*cargo.Item{a, b, c}, []*storage.Container{small, big})

		require.NoError(t, err)
		steps := p.Steps()
		require.Len(t, steps, 3)
		assert.Equal(t, "p10", steps[0].ItemID())
		assert.Equal(t, "big", steps[0].ToContainer())
		assert.Equal(t, "p20", steps[1].ItemID())
		assert.Equal(t, "big", steps[1].ToContainer(), "big still has 50 left")
		assert.Equal(t, "p30", steps[2].ItemID())
		assert.Equal(t, "small", steps[2].ToContainer())
		assert.Equal(t, 3, p.Moves())
		assert.Equal(t, 30*time.Minute, p.EstimatedTime())
	})

	t.Run("should rotate candidates that found no destination", func(t *testing.T) {
		a := newItem(t, "first", box, 1, 10)
		b := newItem(t, "second", box, 1, 20)
		only := newContainer(t, "B", "lab", 50)

		p, err := planner.Plan("A", []*cargo.Item{a, b}, []*storage.Container{only})

		require.NoError(t, err)
		steps := p.Steps()
		require.Len(t, steps, 2)
		assert.Equal(t, plan.Move, steps[0].Action())
		assert.Equal(t, "first", steps[0].ItemID())
		assert.Equal(t, plan.Rotate, steps[1].Action())
		assert.Equal(t, "second", steps[1].ItemID())
		assert.Equal(t, 15*time.Minute, p.EstimatedTime())
	})

	t.Run("should never use the congested container as destination", func(t *testing.T) {
		item := newItem(t, "low", box, 1, 20)
		self := newContainer(t, "A", "lab", 900)

		p, err := planner.Plan("A", []*cargo.Item{item}, []*storage.Container{self})

		require.NoError(t, err)
		assert.Equal(t, 0, p.Moves())
	})

	t.Run("should use the policy's threshold and durations", func(t *testing.T) {
		custom := services.NewRearrangementPlanner(services.RearrangementPolicy{
			PriorityThreshold: 90,
			MoveDuration:      time.Minute,
			RotateDuration:    time.Second,
		})
		item := newItem(t, "mid", box, 1, 80)

		p, err := custom.Plan("A", []*cargo.Item{item}, []*storage.Container{newContainer(t, "B", "lab", 100)})

		require.NoError(t, err)
		assert.Equal(t, 1, p.Moves())
		assert.Equal(t, time.Minute, p.EstimatedTime())
	})

	t.Run("should produce an empty plan for an empty container", func(t *testing.T) {
		p, err := planner.Plan("A", nil, nil)

		require.NoError(t, err)
		assert.True(t, p.IsEmpty())
		assert.Equal(t, time.Duration(0), p.EstimatedTime())
	})

	t.Run("should reject malformed snapshot", func(t *testing.T) {
		_, err := planner.Plan("A", []*cargo.Item{nil}, nil)
		require.ErrorIs(t, err, cargo.ErrItemIsNotConstructed)

		_, err = planner.Plan("A", nil, []*storage.Container{nil})
		require.ErrorIs(t, err, storage.ErrContainerIsNotConstructed)
	})
}

func TestRearrangementPolicy_Validate(t *testing.T) {
	require.NoError(t, services.DefaultRearrangementPolicy().Validate())
	require.Error(t, services.RearrangementPolicy{PriorityThreshold: -1}.Validate())
	require.Error(t, services.RearrangementPolicy{PriorityThreshold: 50, MoveDuration: -time.Second}.Validate())
	require.Error(t, services.RearrangementPolicy{PriorityThreshold: 50, RotateDuration: -time.Second}.Validate())
}

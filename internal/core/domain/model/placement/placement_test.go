package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/pkg/errs"
)

func TestNewPlacement(t *testing.T) {
	dim, err := kernel.NewDimension(10, 10, 20)
	require.NoError(t, err)

	t.Run("should place at origin", func(t *testing.T) {
		p, err := placement.NewPlacement("ITEM001", "contA", kernel.Origin(), dim)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "ITEM001", p.ItemID())
		assert.Equal(t, "contA", p.ContainerID())
		assert.Equal(t, kernel.Coordinates{}, p.Start())
		assert.Equal(t, kernel.Coordinates{Width: 10, Depth: 10, Height: 20}, p.End())
		assert.Equal(t, dim, p.Dimension())
		assert.InDelta(t, 2000.0, p.Volume(), 0)
	})

	t.Run("should offset end by start", func(t *testing.T) {
		start := kernel.Coordinates{Width: 5, Depth: 30, Height: 0}

		p, err := placement.NewPlacement("ITEM001", "contA", start, dim)

		require.NoError(t, err)
		assert.Equal(t, kernel.Coordinates{Width: 15, Depth: 40, Height: 20}, p.End())
	})

	t.Run("should reject invalid geometry", func(t *testing.T) {
		_, err := placement.NewPlacement("ITEM001", "contA", kernel.Origin(), kernel.Dimension{Width: 1, Depth: 0, Height: 1})
		require.ErrorIs(t, err, kernel.ErrInvalidGeometry)
	})

	t.Run("should require ids", func(t *testing.T) {
		_, err := placement.NewPlacement("", "", kernel.Origin(), dim)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestorePlacement(t *testing.T) {
	t.Run("should reject end before start", func(t *testing.T) {
		_, err := placement.RestorePlacement("I", "C",
			kernel.Coordinates{Width: 5, Depth: 5, Height: 5},
			kernel.Coordinates{Width: 5, Depth: 10, Height: 10})

		require.ErrorIs(t, err, kernel.ErrInvalidGeometry)
	})

	t.Run("should reject negative start", func(t *testing.T) {
		_, err := placement.RestorePlacement("I", "C",
			kernel.Coordinates{Width: -1},
			kernel.Coordinates{Width: 5, Depth: 10, Height: 10})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPlacement_Blocks(t *testing.T) {
	dim, _ := kernel.NewDimension(10, 10, 10)
	front, _ := placement.NewPlacement("front", "contA", kernel.Origin(), dim)
	back, _ := placement.NewPlacement("back", "contA", kernel.Coordinates{Depth: 10}, dim)
	side, _ := placement.NewPlacement("side", "contA", kernel.Coordinates{Width: 10}, dim)
	elsewhere, _ := placement.NewPlacement("elsewhere", "contB", kernel.Origin(), dim)

	assert.True(t, front.Blocks(back))
	assert.False(t, back.Blocks(front))
	assert.False(t, side.Blocks(front), "equal depth is side by side")
	assert.False(t, elsewhere.Blocks(back), "different containers never block")
	assert.False(t, front.Blocks(front))
}

func TestPlacement_Fits(t *testing.T) {
	dim, _ := kernel.NewDimension(2, 5, 10)
	start := kernel.Coordinates{Width: 0.1, Depth: 0.2}

	upright, _ := placement.RestorePlacement("I", "C", start, kernel.Coordinates{Width: 2.1, Depth: 5.2, Height: 10})
	rotated, _ := placement.RestorePlacement("I", "C", start, kernel.Coordinates{Width: 10.1, Depth: 5.2, Height: 2})
	stretched, _ := placement.RestorePlacement("I", "C", start, kernel.Coordinates{Width: 2.1, Depth: 100, Height: 10})
	turnedOnDepth, _ := placement.RestorePlacement("I", "C", start, kernel.Coordinates{Width: 5.1, Depth: 2.2, Height: 10})

	assert.True(t, upright.Fits(dim))
	assert.True(t, rotated.Fits(dim))
	assert.False(t, stretched.Fits(dim))
	assert.False(t, turnedOnDepth.Fits(dim), "only rotation about the depth axis is allowed")
}

func TestPlacement_Validate(t *testing.T) {
	var zero placement.Placement
	require.ErrorIs(t, zero.Validate(), placement.ErrPlacementIsNotConstructed)
}

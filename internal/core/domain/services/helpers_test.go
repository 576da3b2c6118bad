package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/core/domain/services"
)

// newContainer builds a 10x10x10 container holding the given available volume.
func newContainer(t *testing.T, id, zone string, available float64) *storage.Container {
	t.Helper()
	dim, err := kernel.NewDimension(10, 10, 10)
	require.NoError(t, err)
	c, err := storage.RestoreContainer(id, zone, dim, available)
	require.NoError(t, err)
	return c
}

// request builds a placement request without validating its dimension.
func request(id string, w, d, h float64, priority int, zone string) services.PlacementRequest {
	return services.PlacementRequest{
		ItemID:        id,
		Dimension:     kernel.Dimension{Width: w, Depth: d, Height: h},
		Priority:      priority,
		PreferredZone: zone,
	}
}

func newItem(t *testing.T, id string, dim kernel.Dimension, mass float64, priority int) *cargo.Item {
	t.Helper()
	item, err := cargo.NewItem(id, "item "+id, dim, mass, priority, "Storage", nil, nil)
	require.NoError(t, err)
	return item
}

func newWaste(t *testing.T, id string, volume, mass float64, markedAt time.Time) *cargo.Item {
	t.Helper()
	dim, err := kernel.NewDimension(volume, 1, 1)
	require.NoError(t, err)
	w, err := cargo.NewWaste(cargo.Expired, markedAt)
	require.NoError(t, err)
	item, err := cargo.RestoreItem(id, "waste "+id, dim, mass, 10, "Storage", nil, nil, &w)
	require.NoError(t, err)
	return item
}

func placeAt(t *testing.T, itemID, containerID string, depth float64) placement.Placement {
	t.Helper()
	dim, err := kernel.NewDimension(1, 1, 1)
	require.NoError(t, err)
	p, err := placement.NewPlacement(itemID, containerID, kernel.Coordinates{Depth: depth}, dim)
	require.NoError(t, err)
	return p
}

func day(n int) time.Time {
	return time.Date(2025, time.January, n, 0, 0, 0, 0, time.UTC)
}

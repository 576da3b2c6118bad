package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/services"
)

func TestWasteInspector_Inspect(t *testing.T) {
	dim := kernel.Dimension{Width: 1, Depth: 1, Height: 1}
	now := day(15)
	past := day(10)
	future := day(20)
	zero := 0
	some := 3

	expired, _ := cargo.NewItem("expired", "x", dim, 1, 10, "z", &past, nil)
	depleted, _ := cargo.NewItem("depleted", "x", dim, 1, 10, "z", &future, &zero)
	healthy, _ := cargo.NewItem("healthy", "x", dim, 1, 10, "z", &future, &some)
	already := newWaste(t, "already", 1, 1, day(1))

	findings, err := services.NewWasteInspector().Inspect([]*cargo.Item{expired, depleted, healthy, already}, now)

	require.NoError(t, err)
	assert.Equal(t, []services.WasteFinding{
		{ItemID: "expired", Reason: cargo.Expired},
		{ItemID: "depleted", Reason: cargo.OutOfUses},
	}, findings)
	assert.True(t, expired.IsWaste())
	assert.True(t, depleted.IsWaste())
	assert.False(t, healthy.IsWaste())
	w, _ := already.Waste()
	assert.Equal(t, day(1), w.MarkedAt())
}

func TestWasteInspector_Inspect_RejectsNilItem(t *testing.T) {
	_, err := services.NewWasteInspector().Inspect([]*cargo.Item{nil}, time.Now())
	require.ErrorIs(t, err, cargo.ErrItemIsNotConstructed)
}

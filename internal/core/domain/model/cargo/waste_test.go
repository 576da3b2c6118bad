package cargo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/pkg/errs"
)

func TestWasteReason_String(t *testing.T) {
	assert.Equal(t, "Expired", cargo.Expired.String())
	assert.Equal(t, "Out of Uses", cargo.OutOfUses.String())
	assert.Equal(t, "Unknown", cargo.UnknownReason.String())
	assert.Equal(t, "Unknown", cargo.WasteReason(42).String())
}

func TestParseWasteReason(t *testing.T) {
	for _, r := range []cargo.WasteReason{cargo.Expired, cargo.OutOfUses} {
		parsed, err := cargo.ParseWasteReason(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := cargo.ParseWasteReason("Broken")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewWaste(t *testing.T) {
	t.Run("requires timestamp", func(t *testing.T) {
		_, err := cargo.NewWaste(cargo.Expired, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires known reason", func(t *testing.T) {
		_, err := cargo.NewWaste(cargo.UnknownReason, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

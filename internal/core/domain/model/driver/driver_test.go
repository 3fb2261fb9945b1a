package driver_test

import (
	"testing"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("should create valid driver", func(t *testing.T) {
		id := kernel.NewUUID()
		companyID := kernel.NewUUID()
		d, err := driver.NewDriver(id, companyID, "Alex Green")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.CompanyID().IsEqual(companyID))
		assert.Equal(t, "Alex Green", d.Name())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "")
		require.Error(t, err)
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID
		_, err := driver.NewDriver(invalidID, kernel.NewUUID(), "Alex Green")
		require.Error(t, err)
	})

	t.Run("should fail validation on unconstructed driver", func(t *testing.T) {
		var d driver.Driver
		require.Error(t, d.Validate())
	})
}

func TestRestoreDriver(t *testing.T) {
	d, err := driver.RestoreDriver(kernel.NewUUID(), kernel.NewUUID(), "Alex Green")
	require.NoError(t, err)
	require.NoError(t, d.Validate())
}

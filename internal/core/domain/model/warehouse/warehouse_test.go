package warehouse_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	location, err := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, err)

	t.Run("should create valid warehouse", func(t *testing.T) {
		id := kernel.NewUUID()
		companyID := kernel.NewUUID()
		w, err := warehouse.NewWarehouse(id, companyID, "Central", "1 Depot Lane", location)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, w.ID().IsEqual(id))
		assert.True(t, w.CompanyID().IsEqual(companyID))
		assert.Equal(t, "Central", w.Name())
		assert.Equal(t, "1 Depot Lane", w.Address())
		assert.Equal(t, location, w.Location())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := warehouse.NewWarehouse(kernel.NewUUID(), kernel.NewUUID(), "", "1 Depot Lane", location)
		require.Error(t, err)
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		_, err := warehouse.NewWarehouse(kernel.NewUUID(), kernel.NewUUID(), "Central", "", location)
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed location", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := warehouse.NewWarehouse(kernel.NewUUID(), kernel.NewUUID(), "Central", "1 Depot Lane", zero)
		require.Error(t, err)
	})
}

func TestWarehouse_IsEqual(t *testing.T) {
	location, err := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, err)

	a, err := warehouse.NewWarehouse(kernel.NewUUID(), kernel.NewUUID(), "A", "1 Depot Lane", location)
	require.NoError(t, err)
	b, err := warehouse.NewWarehouse(kernel.NewUUID(), kernel.NewUUID(), "B", "2 Depot Lane", location)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

package commands_test

import (
	"testing"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

func testGeoPoint(t *testing.T, latitude float64, longitude float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)
	return point
}

func newPendingParcel(t *testing.T, companyID kernel.UUID, weight float64, height float64, width float64, length float64) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), companyID,
		"12 Dock Road", "9 Market Square",
		testGeoPoint(t, 55.75, 37.61), testGeoPoint(t, 59.93, 30.31),
		weight, height, width, length,
	)
	require.NoError(t, err)
	return p
}

func newAcceptedParcel(t *testing.T, companyID kernel.UUID, warehouseID kernel.UUID, weight float64, height float64, width float64, length float64) *parcel.Parcel {
	t.Helper()
	p := newPendingParcel(t, companyID, weight, height, width, length)
	require.NoError(t, p.Accept(warehouseID))
	return p
}

func newTestWarehouse(t *testing.T, companyID kernel.UUID) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(
		kernel.NewUUID(), companyID, "Central", "1 Depot Lane", testGeoPoint(t, 55.70, 37.60),
	)
	require.NoError(t, err)
	return w
}

func newTestDriver(t *testing.T, companyID kernel.UUID) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), companyID, "Alex Green")
	require.NoError(t, err)
	return d
}

func newStationedVehicle(t *testing.T, companyID kernel.UUID, warehouseID kernel.UUID, maxWeight float64, maxVolume float64) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), companyID, &warehouseID, "A123BC", "Van", maxWeight, maxVolume,
	)
	require.NoError(t, err)
	return v
}

func newPendingShipment(t *testing.T, companyID kernel.UUID, vehicleID kernel.UUID, warehouseID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), companyID, kernel.NewUUID(), vehicleID, warehouseID)
	require.NoError(t, err)
	return s
}

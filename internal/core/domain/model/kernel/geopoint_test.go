package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
		errType   error
	}{
		{
			name:      "valid point",
			latitude:  52.52,
			longitude: 13.405,
			wantErr:   false,
		},
		{
			name:      "valid point at min bounds",
			latitude:  kernel.LatitudeMin,
			longitude: kernel.LongitudeMin,
			wantErr:   false,
		},
		{
			name:      "valid point at max bounds",
			latitude:  kernel.LatitudeMax,
			longitude: kernel.LongitudeMax,
			wantErr:   false,
		},
		{
			name:      "valid point at origin",
			latitude:  0,
			longitude: 0,
			wantErr:   false,
		},
		{
			name:      "invalid latitude too small",
			latitude:  -90.5,
			longitude: 0,
			wantErr:   true,
			errType:   errs.NewValueIsOutOfRangeError("latitude", -90.5, kernel.LatitudeMin, kernel.LatitudeMax),
		},
		{
			name:      "invalid latitude too large",
			latitude:  90.5,
			longitude: 0,
			wantErr:   true,
			errType:   errs.NewValueIsOutOfRangeError("latitude", 90.5, kernel.LatitudeMin, kernel.LatitudeMax),
		},
		{
			name:      "invalid longitude too small",
			latitude:  0,
			longitude: -180.5,
			wantErr:   true,
			errType:   errs.NewValueIsOutOfRangeError("longitude", -180.5, kernel.LongitudeMin, kernel.LongitudeMax),
		},
		{
			name:      "invalid longitude too large",
			latitude:  0,
			longitude: 180.5,
			wantErr:   true,
			errType:   errs.NewValueIsOutOfRangeError("longitude", 180.5, kernel.LongitudeMin, kernel.LongitudeMax),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					assert.ErrorContains(t, err, tt.errType.Error())
				}
				return
			}

			require.NoError(t, err)
			require.NoError(t, point.Validate())
			assert.InDelta(t, tt.latitude, point.Latitude(), 0)
			assert.InDelta(t, tt.longitude, point.Longitude(), 0)
		})
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("constructed point is valid", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(10, 20)
		require.NoError(t, err)

		require.NoError(t, point.Validate())
	})
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	tests := []struct {
		name       string
		from       [2]float64
		to         [2]float64
		expectedKm float64
		delta      float64
	}{
		{
			name:       "same point is zero distance",
			from:       [2]float64{52.52, 13.405},
			to:         [2]float64{52.52, 13.405},
			expectedKm: 0,
			delta:      0.001,
		},
		{
			name:       "berlin to paris",
			from:       [2]float64{52.52, 13.405},
			to:         [2]float64{48.8566, 2.3522},
			expectedKm: 877.46,
			delta:      1,
		},
		{
			name:       "one degree of latitude at equator",
			from:       [2]float64{0, 0},
			to:         [2]float64{1, 0},
			expectedKm: 111.19,
			delta:      0.1,
		},
		{
			name:       "antipodal points are half the circumference",
			from:       [2]float64{0, 0},
			to:         [2]float64{0, 180},
			expectedKm: 20015.09,
			delta:      0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := kernel.NewGeoPoint(tt.from[0], tt.from[1])
			require.NoError(t, err)
			to, err := kernel.NewGeoPoint(tt.to[0], tt.to[1])
			require.NoError(t, err)

			distance, err := from.DistanceTo(to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedKm, distance, tt.delta)

			// Great-circle distance is symmetric
			reverse, err := to.DistanceTo(from)
			require.NoError(t, err)
			assert.InDelta(t, distance, reverse, 0.001)
		})
	}

	t.Run("unconstructed point fails", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(1, 1)
		require.NoError(t, err)
		var zero kernel.GeoPoint

		_, err = point.DistanceTo(zero)

		require.Error(t, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal points", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(41.9, 12.5)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(41.9, 12.5)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different points", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(41.9, 12.5)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(41.9, 12.6)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})
}

package shipment_test

import (
	"testing"

	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from shipment.Status
		to   shipment.Status
		want bool
	}{
		{"pending to loading", shipment.Pending, shipment.Loading, true},
		{"loading to in transit", shipment.Loading, shipment.InTransit, true},
		{"in transit to completed", shipment.InTransit, shipment.Completed, true},
		{"pending skips to in transit", shipment.Pending, shipment.InTransit, false},
		{"pending skips to completed", shipment.Pending, shipment.Completed, false},
		{"loading back to pending", shipment.Loading, shipment.Pending, false},
		{"completed to anything", shipment.Completed, shipment.Loading, false},
		{"same status", shipment.Loading, shipment.Loading, false},
		{"unknown source", shipment.Unknown, shipment.Pending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	next, err := shipment.Pending.TransitionTo(shipment.Loading)
	require.NoError(t, err)
	assert.Equal(t, shipment.Loading, next)

	_, err = shipment.Pending.TransitionTo(shipment.Completed)
	require.Error(t, err)

	_, err = shipment.InTransit.TransitionTo(shipment.Status(42))
	require.Error(t, err)
}

func TestStatusFromString(t *testing.T) {
	cases := map[string]shipment.Status{
		"pending":    shipment.Pending,
		"loading":    shipment.Loading,
		"in_transit": shipment.InTransit,
		"completed":  shipment.Completed,
	}
	for raw, want := range cases {
		got, err := shipment.StatusFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := shipment.StatusFromString("parked")
	require.Error(t, err)

	_, err = shipment.StatusFromString("Pending")
	require.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.Completed.IsTerminal())
	assert.False(t, shipment.Pending.IsTerminal())
	assert.False(t, shipment.InTransit.IsTerminal())
}

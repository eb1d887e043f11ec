package order_test

import (
	"testing"

	"canteen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Pending, order.Placed, order.Cooking, order.Ready,
		order.OutForDelivery, order.Delivered, order.Picked,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "placed", order.Placed.String())
	assert.Equal(t, "cooking", order.Cooking.String())
	assert.Equal(t, "ready", order.Ready.String())
	assert.Equal(t, "out_for_delivery", order.OutForDelivery.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "picked", order.Picked.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Placed, order.Cooking, order.Ready,
			order.OutForDelivery, order.Delivered, order.Picked,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects invalid strings", func(t *testing.T) {
		_, err := order.StatusFromString("finished")
		require.Error(t, err)

		_, err = order.StatusFromString("")
		require.Error(t, err)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("legal edges", func(t *testing.T) {
		cases := []struct {
			from, to order.Status
		}{
			{order.Pending, order.Placed},
			{order.Placed, order.Cooking},
			{order.Cooking, order.Ready},
			{order.Ready, order.OutForDelivery},
			{order.Ready, order.Picked},
			{order.OutForDelivery, order.Delivered},
		}

		for _, tc := range cases {
			assert.True(t, tc.from.CanTransitionTo(tc.to),
				"%s -> %s should be legal", tc.from, tc.to)

			next, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		}
	})

	t.Run("illegal edges", func(t *testing.T) {
		cases := []struct {
			from, to order.Status
		}{
			{order.Pending, order.Cooking},
			{order.Pending, order.Ready},
			{order.Placed, order.Ready},
			{order.Cooking, order.OutForDelivery},
			{order.Ready, order.Delivered},
			{order.OutForDelivery, order.Picked},
			{order.Delivered, order.Pending},
			{order.Picked, order.Ready},
			{order.OutForDelivery, order.Ready},
		}

		for _, tc := range cases {
			assert.False(t, tc.from.CanTransitionTo(tc.to),
				"%s -> %s should be illegal", tc.from, tc.to)

			_, err := tc.from.TransitionTo(tc.to)
			require.Error(t, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Picked.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

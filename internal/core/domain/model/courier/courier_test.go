package courier_test

import (
	"testing"
	"time"

	"canteen/internal/core/domain/model/courier"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("should create courier with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, "Alice")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, courier.Inactive, c.Status())
		assert.False(t, c.IsActive())
		assert.InDelta(t, 0, c.Rating().Value(), 0)
		assert.Equal(t, 0, c.TotalAssigned())
		assert.Equal(t, 0, c.TotalRatingsCount())
		assert.Nil(t, c.LastAssignedAt())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero value UUID", func(t *testing.T) {
		var id kernel.UUID

		c, err := courier.NewCourier(id, "Alice")

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("should restore courier with full state", func(t *testing.T) {
		id := kernel.NewUUID()
		rating, err := kernel.NewRating(4.2)
		require.NoError(t, err)
		lastAssigned := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

		c, err := courier.RestoreCourier(id, "Bob", courier.Active, rating, 17, 9, &lastAssigned)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.IsActive())
		assert.InDelta(t, 4.2, c.Rating().Value(), 1e-9)
		assert.Equal(t, 17, c.TotalAssigned())
		assert.Equal(t, 9, c.TotalRatingsCount())
		require.NotNil(t, c.LastAssignedAt())
		assert.True(t, c.LastAssignedAt().Equal(lastAssigned))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := courier.RestoreCourier(kernel.NewUUID(), "Bob", courier.Unknown,
			kernel.ZeroRating(), 0, 0, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with negative counters", func(t *testing.T) {
		_, err := courier.RestoreCourier(kernel.NewUUID(), "Bob", courier.Active,
			kernel.ZeroRating(), -1, 0, nil)

		require.Error(t, err)
	})

	t.Run("should fail with zero value rating", func(t *testing.T) {
		var rating kernel.Rating

		_, err := courier.RestoreCourier(kernel.NewUUID(), "Bob", courier.Active,
			rating, 0, 0, nil)

		require.Error(t, err)
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("nil courier is invalid", func(t *testing.T) {
		var c *courier.Courier

		require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})

	t.Run("zero value courier is invalid", func(t *testing.T) {
		c := &courier.Courier{}

		require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestCourier_ActivateDeactivate(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
	require.NoError(t, err)

	c.Activate()
	assert.True(t, c.IsActive())
	assert.Equal(t, courier.Active, c.Status())

	c.Deactivate()
	assert.False(t, c.IsActive())
	assert.Equal(t, courier.Inactive, c.Status())
}

func TestCourier_RecordAssignments(t *testing.T) {
	t.Run("should bump counters and recency", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		first := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		second := first.Add(2 * time.Hour)

		require.NoError(t, c.RecordAssignments(3, first))
		assert.Equal(t, 3, c.TotalAssigned())
		require.NotNil(t, c.LastAssignedAt())
		assert.True(t, c.LastAssignedAt().Equal(first))

		require.NoError(t, c.RecordAssignments(2, second))
		assert.Equal(t, 5, c.TotalAssigned())
		assert.True(t, c.LastAssignedAt().Equal(second))
	})

	t.Run("should reject non-positive count", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		require.Error(t, c.RecordAssignments(0, time.Now()))
		require.Error(t, c.RecordAssignments(-2, time.Now()))
		assert.Equal(t, 0, c.TotalAssigned())
		assert.Nil(t, c.LastAssignedAt())
	})

	t.Run("returned recency is a copy", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		require.NoError(t, c.RecordAssignments(1, at))

		*c.LastAssignedAt() = at.Add(time.Hour)

		assert.True(t, c.LastAssignedAt().Equal(at))
	})
}

func TestCourier_AcceptRating(t *testing.T) {
	mustRating := func(v float64) kernel.Rating {
		r, err := kernel.NewRating(v)
		require.NoError(t, err)
		return r
	}

	t.Run("first rating becomes the average", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		require.NoError(t, c.AcceptRating(mustRating(4)))

		assert.InDelta(t, 4.0, c.Rating().Value(), 1e-9)
		assert.Equal(t, 1, c.TotalRatingsCount())
	})

	t.Run("second rating folds into incremental mean", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		require.NoError(t, c.AcceptRating(mustRating(4)))
		require.NoError(t, c.AcceptRating(mustRating(2)))

		// (4*1 + 2) / 2 = 3.0
		assert.InDelta(t, 3.0, c.Rating().Value(), 1e-9)
		assert.Equal(t, 2, c.TotalRatingsCount())
	})

	t.Run("average stays within bounds over many submissions", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
		require.NoError(t, err)

		values := []float64{5, 0, 5, 5, 1, 3.5, 4.5, 0, 2, 5}
		for _, v := range values {
			require.NoError(t, c.AcceptRating(mustRating(v)))
		}

		assert.Equal(t, len(values), c.TotalRatingsCount())
		assert.GreaterOrEqual(t, c.Rating().Value(), 0.0)
		assert.LessOrEqual(t, c.Rating().Value(), 5.0)

		var sum float64
		for _, v := range values {
			sum += v
		}
		assert.InDelta(t, sum/float64(len(values)), c.Rating().Value(), 1e-9)
	})

	t.Run("rejects zero value rating", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alice")
		require.NoError(t, err)
		var notConstructed kernel.Rating

		require.Error(t, c.AcceptRating(notConstructed))
		assert.Equal(t, 0, c.TotalRatingsCount())
	})
}

func TestStatus(t *testing.T) {
	t.Run("validate", func(t *testing.T) {
		require.NoError(t, courier.Active.Validate())
		require.NoError(t, courier.Inactive.Validate())
		require.Error(t, courier.Unknown.Validate())
		require.Error(t, courier.Status(42).Validate())
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "active", courier.Active.String())
		assert.Equal(t, "inactive", courier.Inactive.String())
		assert.Equal(t, "unknown", courier.Unknown.String())
		assert.Equal(t, "unknown", courier.Status(42).String())
	})

	t.Run("from string", func(t *testing.T) {
		status, err := courier.StatusFromString("active")
		require.NoError(t, err)
		assert.Equal(t, courier.Active, status)

		status, err = courier.StatusFromString("inactive")
		require.NoError(t, err)
		assert.Equal(t, courier.Inactive, status)

		_, err = courier.StatusFromString("resting")
		require.Error(t, err)
	})
}

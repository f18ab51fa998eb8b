package stages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsense/fleetsense/pkg/config"
)

func testCenter() *config.ServiceCenterConfig {
	return &config.ServiceCenterConfig{
		ID:       "center_test",
		Timezone: "Asia/Kolkata",
		OperatingHours: map[string]config.DayHours{
			"monday":  {Open: "09:00", Close: "12:00"},
			"tuesday": {Open: "09:00", Close: "11:00"},
		},
		CapacityPerSlot: 1,
	}
}

func TestExpandSlots(t *testing.T) {
	// 2026-01-05 is a Monday. Start well before opening so the whole week's
	// windows are in the future.
	from := time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)

	t.Run("expands operating hours into hourly UTC instants", func(t *testing.T) {
		slots, err := ExpandSlots(testCenter(), from, 7, nil)
		require.NoError(t, err)

		// Mon 09-12 gives three slots, Tue 09-11 gives two; other days closed.
		require.Len(t, slots, 5)

		// 09:00 IST is 03:30 UTC.
		assert.Equal(t, time.Date(2026, 1, 5, 3, 30, 0, 0, time.UTC), slots[0])
		assert.Equal(t, time.Date(2026, 1, 5, 4, 30, 0, 0, time.UTC), slots[1])
		assert.Equal(t, time.Date(2026, 1, 6, 3, 30, 0, 0, time.UTC), slots[3])
		for _, s := range slots {
			assert.Equal(t, time.UTC, s.Location())
		}
	})

	t.Run("slots at capacity are dropped", func(t *testing.T) {
		booked := map[time.Time]int{
			time.Date(2026, 1, 5, 3, 30, 0, 0, time.UTC): 1,
		}
		slots, err := ExpandSlots(testCenter(), from, 7, booked)
		require.NoError(t, err)
		require.Len(t, slots, 4)
		assert.Equal(t, time.Date(2026, 1, 5, 4, 30, 0, 0, time.UTC), slots[0])
	})

	t.Run("occupancy below capacity keeps the slot", func(t *testing.T) {
		c := testCenter()
		c.CapacityPerSlot = 2
		booked := map[time.Time]int{
			time.Date(2026, 1, 5, 3, 30, 0, 0, time.UTC): 1,
		}
		slots, err := ExpandSlots(c, from, 7, booked)
		require.NoError(t, err)
		assert.Len(t, slots, 5)
	})

	t.Run("past instants are excluded", func(t *testing.T) {
		// Start mid-Monday-window: 04:00 UTC is between the first and second
		// slot.
		mid := time.Date(2026, 1, 5, 4, 0, 0, 0, time.UTC)
		slots, err := ExpandSlots(testCenter(), mid, 1, nil)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, time.Date(2026, 1, 5, 4, 30, 0, 0, time.UTC), slots[0])
	})

	t.Run("zero horizon yields nothing", func(t *testing.T) {
		slots, err := ExpandSlots(testCenter(), from, 0, nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("invalid timezone errors", func(t *testing.T) {
		c := testCenter()
		c.Timezone = "Mars/Olympus"
		_, err := ExpandSlots(c, from, 7, nil)
		assert.Error(t, err)
	})

	t.Run("malformed hours error", func(t *testing.T) {
		c := testCenter()
		c.OperatingHours["monday"] = config.DayHours{Open: "nine", Close: "12:00"}
		_, err := ExpandSlots(c, from, 7, nil)
		assert.Error(t, err)
	})
}

func TestParseClock(t *testing.T) {
	h, m, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	for _, bad := range []string{"", "9", "25:00", "10:75", "aa:bb"} {
		_, _, err := parseClock(bad)
		assert.Error(t, err, bad)
	}
}

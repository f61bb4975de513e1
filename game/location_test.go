package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLocations(t *testing.T) {
	t.Run("builder has two slots at price two", func(t *testing.T) {
		builder := DefaultLocations(2).Find("Builder")
		require.NotNil(t, builder)
		require.Len(t, builder.Slots, 2)
		for _, s := range builder.Slots {
			require.Equal(t, 2, s.BasePrice)
		}
		require.Equal(t, ActionBuild, builder.Action)
	})

	t.Run("core locations grow with four players", func(t *testing.T) {
		locs := DefaultLocations(4)
		require.Len(t, locs.Find("Producer").Slots, 3)
		require.Len(t, locs.Find("Leadership").Slots, 1, "Deeds keep a single slot")
	})

	t.Run("deed locations start closed", func(t *testing.T) {
		locs := DefaultLocations(2)
		require.False(t, locs.Find("Wholesaler").IsOpen())
		require.False(t, locs.Find("Lotto").IsOpen())
		require.False(t, locs.Find("Lotto").Available(), "Closed location should not be available")
	})
}

func TestLocationSlots(t *testing.T) {
	t.Run("filling every slot makes it unavailable until emptied", func(t *testing.T) {
		builder := DefaultLocations(2).Find("Builder")

		require.NoError(t, builder.UseSlot(2))
		require.True(t, builder.Available(), "One free slot left")
		require.NoError(t, builder.UseSlot(2))
		require.False(t, builder.Available())

		err := builder.UseSlot(2)
		require.ErrorIs(t, err, ErrNoAvailableSlot)

		builder.EmptySlots()
		require.True(t, builder.Available())
	})

	t.Run("min slot price ignores filled slots", func(t *testing.T) {
		l := &Location{Name: "Mixed", Slots: []Slot{{BasePrice: 1}, {BasePrice: 3}}}
		price, ok := l.MinSlotPrice()
		require.True(t, ok)
		require.Equal(t, 1, price)

		require.NoError(t, l.UseSlot(1))
		price, ok = l.MinSlotPrice()
		require.True(t, ok)
		require.Equal(t, 3, price)

		require.NoError(t, l.UseSlot(3))
		_, ok = l.MinSlotPrice()
		require.False(t, ok, "No price when every slot is taken")
	})

	t.Run("close and open toggle the slot list", func(t *testing.T) {
		producer := DefaultLocations(2).Find("Producer")
		require.NoError(t, producer.UseSlot(1))

		producer.Close()
		require.False(t, producer.IsOpen())

		producer.Open(2)
		require.True(t, producer.IsOpen())
		require.Len(t, producer.Slots, 2)
		require.True(t, producer.Slots[0].Available(), "Reopened slots start empty")
	})
}

func TestLocationsClone(t *testing.T) {
	locs := DefaultLocations(2)
	clone := locs.Clone()
	require.NoError(t, clone.Find("Producer").UseSlot(1))

	require.True(t, locs.Find("Producer").Slots[0].Available(), "Clone should not share slots")
}

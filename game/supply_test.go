package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func deckOf(n int) []Plan {
	deck := make([]Plan, n)
	for i := range deck {
		deck[i] = plan(fmt.Sprintf("p%d", i), 1, 1)
	}
	return deck
}

func names(plans []Plan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.Name
	}
	return out
}

func TestPlanSupply(t *testing.T) {
	t.Run("initial refill draws from the end of the deck", func(t *testing.T) {
		ps := NewPlanSupply(deckOf(10), 3)

		require.Len(t, ps.Offer, 3)
		require.Equal(t, 7, ps.DeckSize())
		require.Equal(t, []string{"p9", "p8", "p7"}, names(ps.Offer))
	})

	t.Run("take then refill restores the offer", func(t *testing.T) {
		ps := NewPlanSupply(deckOf(10), 3)

		taken, err := ps.Take("p8")
		require.NoError(t, err)
		require.Equal(t, "p8", taken.Name)
		require.Len(t, ps.Offer, 2)

		require.True(t, ps.Refill())
		require.Len(t, ps.Offer, 3)
		require.Equal(t, 6, ps.DeckSize())
		require.Equal(t, []string{"p9", "p7", "p6"}, names(ps.Offer))
	})

	t.Run("refill is idempotent at capacity", func(t *testing.T) {
		ps := NewPlanSupply(deckOf(5), 3)

		require.True(t, ps.Refill())
		require.True(t, ps.Refill())
		require.Len(t, ps.Offer, 3)
		require.Equal(t, 2, ps.DeckSize())
	})

	t.Run("refill reports an exhausted deck", func(t *testing.T) {
		ps := NewPlanSupply(deckOf(2), 3)

		require.Len(t, ps.Offer, 2)
		require.False(t, ps.Refill())
	})

	t.Run("take unknown plan", func(t *testing.T) {
		ps := NewPlanSupply(deckOf(4), 3)

		_, err := ps.Take("nope")
		require.ErrorIs(t, err, ErrPlanNotInSupply)
		require.Len(t, ps.Offer, 3)
	})

	t.Run("lotto draws hidden from the deck", func(t *testing.T) {
		ps := NewPlanSupply(deckOf(4), 3)

		hp, ok := ps.LottoDraw()
		require.True(t, ok)
		require.True(t, hp.Hidden)
		require.Equal(t, "p0", hp.Name)
		require.Len(t, ps.Offer, 3, "Lotto should bypass the offer")

		_, ok = ps.LottoDraw()
		require.False(t, ok, "Empty deck yields nothing")
	})

	t.Run("restore keeps the serialized offer", func(t *testing.T) {
		ps := RestorePlanSupply([]Plan{plan("a", 1, 1)}, deckOf(3), 3)

		require.Equal(t, []string{"a"}, names(ps.Offer))
		require.Equal(t, 3, ps.DeckSize())
	})
}

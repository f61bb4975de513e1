package player

import (
	"context"
	"mintworks/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func view() game.View {
	newPlayer := func(label string) game.PlayerState {
		return game.PlayerState{Label: label, Tokens: 3}
	}
	s := game.Snapshot{
		Round:          1,
		StartingPlayer: "A",
		PlayerToAct:    "A",
		Players:        []game.PlayerState{newPlayer("A"), newPlayer("B"), newPlayer("C")},
		Locations:      game.DefaultLocations(3).Values(),
		Offer:          []game.Plan{{Name: "Windmill", Cost: 1, Stars: 1}},
		Capacity:       3,
	}
	return s.View("A")
}

func TestRandom(t *testing.T) {
	ctx := context.Background()
	factory := game.NewTurnFactory(nil)
	p := NewRandom("A", factory, 3)
	v := view()

	t.Run("takes legal turns", func(t *testing.T) {
		legal := factory.Turns(v)
		for i := 0; i < 50; i++ {
			turn, err := p.TakeTurn(ctx, v)
			require.NoError(t, err)
			require.Contains(t, legal, turn)
		}
	})

	t.Run("selects another player", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			label, err := p.SelectPlayerForEffect(ctx, game.SelectPlayer{Tokens: 1}, []string{"A", "B", "C"})
			require.NoError(t, err)
			require.NotEqual(t, "A", label)
			seen[label] = true
		}
		require.Len(t, seen, 2)
	})

	t.Run("nobody to select", func(t *testing.T) {
		_, err := p.SelectPlayerForEffect(ctx, game.SelectPlayer{Tokens: 1}, []string{"A"})
		require.ErrorIs(t, err, game.ErrUnknownPlayer)
	})

	t.Run("unknown seat has no turns", func(t *testing.T) {
		stranger := v
		stranger.Self = "Z"
		_, err := p.TakeTurn(ctx, stranger)
		require.ErrorIs(t, err, ErrNoTurns)
	})
}

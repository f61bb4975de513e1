package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func withBuildings(p PlayerState, plans ...Plan) PlayerState {
	for _, pl := range plans {
		p.Neighbourhood.AddBuilding(Building{Plan: pl})
	}
	return p
}

func TestFindWinner(t *testing.T) {
	t.Run("most stars wins", func(t *testing.T) {
		a := withBuildings(player("A", 10), plan("Windmill", 1, 1))
		b := withBuildings(player("B", 0), plan("Statue", 2, 2))

		result := FindWinner([]PlayerState{a, b}, nil)

		require.Equal(t, "B", result.Winner)
		require.Equal(t, 2, result.Scores[0].Stars)
	})

	t.Run("neighbourhood size breaks a star tie", func(t *testing.T) {
		a := withBuildings(player("A", 0), plan("Statue", 2, 2))
		b := withBuildings(player("B", 0), plan("Windmill", 1, 1), plan("Bridge", 1, 1))

		require.Equal(t, "B", FindWinner([]PlayerState{a, b}, nil).Winner)

		FavorLargeNeighbourhood = false
		defer func() { FavorLargeNeighbourhood = true }()
		require.Equal(t, "A", FindWinner([]PlayerState{a, b}, nil).Winner, "Smaller neighbourhood wins when reversed")
	})

	t.Run("tokens then age", func(t *testing.T) {
		a := player("A", 2)
		b := player("B", 3)
		require.Equal(t, "B", FindWinner([]PlayerState{a, b}, nil).Winner)

		a.Tokens, a.Age = 3, 50
		b.Age = 40
		require.Equal(t, "B", FindWinner([]PlayerState{a, b}, nil).Winner, "Age closest to 42 wins")
	})

	t.Run("remaining ties are broken at random", func(t *testing.T) {
		players := []PlayerState{player("A", 1), player("B", 1), player("C", 1)}
		rng := rand.New(rand.NewSource(7))
		wins := map[string]int{}
		for i := 0; i < 1000; i++ {
			wins[FindWinner(players, rng).Winner]++
		}
		for _, label := range []string{"A", "B", "C"} {
			require.Positive(t, wins[label], "%s never won a fully tied game", label)
		}
	})

	t.Run("winner heads the scoreboard", func(t *testing.T) {
		players := []PlayerState{player("A", 1), player("B", 1), player("C", 1)}
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 20; i++ {
			result := FindWinner(players, rng)
			require.Len(t, result.Scores, 3)
			require.Equal(t, result.Winner, result.Scores[0].Player)
		}
	})
}

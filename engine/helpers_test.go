package engine

import (
	"context"
	"mintworks/cards"
	"mintworks/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// queued plays its turns in order and passes once they run out.
type queued struct {
	turns []game.Turn
	pick  string
	views []game.View
}

func (q *queued) TakeTurn(ctx context.Context, view game.View) (game.Turn, error) {
	q.views = append(q.views, view)
	if len(q.turns) == 0 {
		return game.PassTurn(view.Self), nil
	}
	t := q.turns[0]
	q.turns = q.turns[1:]
	return t, nil
}

func (q *queued) SelectPlayerForEffect(ctx context.Context, effect game.SelectPlayer, players []string) (string, error) {
	return q.pick, nil
}

func basePack(t *testing.T) *cards.Pack {
	t.Helper()
	pack, err := cards.Base()
	require.NoError(t, err)
	return pack
}

func basePlan(t *testing.T, name string) game.Plan {
	t.Helper()
	plan, ok := basePack(t).Plan(name)
	require.True(t, ok, "base pack should contain %s", name)
	return plan
}

func seatState(label string, tokens int) game.PlayerState {
	return game.PlayerState{
		Label:         label,
		Age:           30,
		Tokens:        tokens,
		Neighbourhood: game.Neighbourhood{Plans: []game.HandPlan{}, Buildings: []game.Building{}},
	}
}

// twoPlayers is round one of a two player game with A holding the starting player token.
func twoPlayers(t *testing.T) game.Snapshot {
	t.Helper()
	return game.Snapshot{
		Round:          1,
		Phase:          game.DevelopmentPhase,
		StartingPlayer: "A",
		PlayerToAct:    "A",
		Players:        []game.PlayerState{seatState("A", 3), seatState("B", 3)},
		Locations:      game.DefaultLocations(2).Values(),
		Offer:          []game.Plan{basePlan(t, "Windmill"), basePlan(t, "Statue"), basePlan(t, "Gardens")},
		Deck:           []game.Plan{basePlan(t, "Mine"), basePlan(t, "Workshop"), basePlan(t, "Factory")},
		Capacity:       3,
	}
}

func build(t *testing.T, s *game.Snapshot, label string, names ...string) {
	t.Helper()
	for i := range s.Players {
		if s.Players[i].Label != label {
			continue
		}
		for _, name := range names {
			s.Players[i].Neighbourhood.AddBuilding(game.Building{Plan: basePlan(t, name)})
		}
		return
	}
	t.Fatalf("no player %s", label)
}

func restore(t *testing.T, s game.Snapshot, a, b *queued, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithHooks(basePack(t).Hooks()), WithSeed(1)}, opts...)
	e, err := FromSnapshot(s, map[string]game.Strategy{"A": a, "B": b}, opts...)
	require.NoError(t, err)
	return e
}

func tokens(s game.Snapshot, label string) int {
	p, _ := s.Player(label)
	return p.Tokens
}

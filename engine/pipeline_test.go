package engine

import (
	"context"
	"mintworks/cards"
	"mintworks/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// passRound lets both players pass until upkeep has run.
func passRound(t *testing.T, e *Engine) {
	t.Helper()
	round := e.Round()
	for e.Round() == round && e.Phase() != game.ScoringPhase {
		require.NoError(t, e.Step(context.Background()))
	}
}

func TestUpkeepHooks(t *testing.T) {
	pink, err := cards.Named("pink")
	require.NoError(t, err)
	_, combined, err := cards.Combine(basePack(t), pink)
	require.NoError(t, err)
	pinkPlan := func(name string) game.Plan {
		plan, ok := pink.Plan(name)
		require.True(t, ok)
		return plan
	}

	t.Run("every player gains from a shared card", func(t *testing.T) {
		s := twoPlayers(t)
		s.Players[0].Neighbourhood.AddBuilding(game.Building{Plan: pinkPlan("Community Garden")})
		e := restore(t, s, &queued{}, &queued{}, WithHooks(combined))

		passRound(t, e)

		require.Equal(t, 5, tokens(e.Snapshot(), "A"))
		require.Equal(t, 5, tokens(e.Snapshot(), "B"))
	})

	t.Run("other players gain from a food bank", func(t *testing.T) {
		s := twoPlayers(t)
		s.Players[0].Neighbourhood.AddBuilding(game.Building{Plan: pinkPlan("Food Bank")})
		e := restore(t, s, &queued{}, &queued{}, WithHooks(combined))

		passRound(t, e)

		require.Equal(t, 4, tokens(e.Snapshot(), "A"))
		require.Equal(t, 5, tokens(e.Snapshot(), "B"))
	})

	t.Run("co-op shares a token with the chosen player", func(t *testing.T) {
		s := twoPlayers(t)
		build(t, &s, "A", "Co-op")
		e := restore(t, s, &queued{pick: "B"}, &queued{})

		passRound(t, e)

		require.Equal(t, 5, tokens(e.Snapshot(), "A"))
		require.Equal(t, 5, tokens(e.Snapshot(), "B"))
	})

	t.Run("co-op owner cannot choose themselves", func(t *testing.T) {
		s := twoPlayers(t)
		build(t, &s, "A", "Co-op")
		e := restore(t, s, &queued{pick: "A"}, &queued{})
		ctx := context.Background()

		require.NoError(t, e.Step(ctx))
		require.ErrorIs(t, e.Step(ctx), game.ErrUnknownPlayer)
		require.Equal(t, game.ScoringPhase, e.Phase())
	})

	t.Run("token producers", func(t *testing.T) {
		s := twoPlayers(t)
		build(t, &s, "A", "Corporate HQ", "Windmill")
		build(t, &s, "B", "Stripmine")
		e := restore(t, s, &queued{}, &queued{})

		passRound(t, e)

		require.Equal(t, 6, tokens(e.Snapshot(), "A"), "One token per building")
		require.Equal(t, 7, tokens(e.Snapshot(), "B"))
	})

	t.Run("gallery collects a star each upkeep", func(t *testing.T) {
		s := twoPlayers(t)
		build(t, &s, "A", "Gallery")
		e := restore(t, s, &queued{}, &queued{})

		passRound(t, e)
		passRound(t, e)

		a, _ := e.Snapshot().Player("A")
		require.Equal(t, 2, a.Neighbourhood.Buildings[0].State.Counter)
		require.Equal(t, 2, a.Neighbourhood.Buildings[0].AdditionalStars)
	})

	t.Run("deed owner is paid when the location was used", func(t *testing.T) {
		s := twoPlayers(t)
		build(t, &s, "A", "Wholesaler")
		locs := game.LocationsFrom(s.Locations)
		locs.Find("Wholesaler").Open(2)
		s.Locations = locs.Values()
		s.PlayerToAct = "B"
		e := restore(t, s, &queued{}, &queued{turns: []game.Turn{game.WholesaleTurn("B")}})

		passRound(t, e)

		require.Equal(t, 6, tokens(e.Snapshot(), "A"))
		require.Equal(t, 5, tokens(e.Snapshot(), "B"))

		passRound(t, e)
		require.Equal(t, 7, tokens(e.Snapshot(), "A"), "Unused deed pays nothing")
	})

	t.Run("cost adjustments are rejected outside build and supply", func(t *testing.T) {
		hooks := game.HookRegistry{"Windmill": {game.TriggerUpkeep: {Pre: func(h *game.HookContext) (game.Effect, error) {
			return game.AdjustCost{Delta: -1}, nil
		}}}}
		s := twoPlayers(t)
		build(t, &s, "A", "Windmill")
		e := restore(t, s, &queued{}, &queued{}, WithHooks(hooks))
		ctx := context.Background()

		require.NoError(t, e.Step(ctx))
		require.ErrorIs(t, e.Step(ctx), game.ErrInvalidEffect)
		require.ErrorIs(t, e.Err(), game.ErrInvalidEffect)
	})
}

func TestActionHooks(t *testing.T) {
	ctx := context.Background()

	t.Run("crane discounts the builder", func(t *testing.T) {
		s := twoPlayers(t)
		s.Players[0].Tokens = 1
		s.Players[0].Neighbourhood.AddPlan(basePlan(t, "Statue"), false)
		build(t, &s, "A", "Crane")
		e := restore(t, s, &queued{turns: []game.Turn{game.BuildTurn("A", "Statue")}}, &queued{})

		require.NoError(t, e.Step(ctx))

		after := e.Snapshot()
		a, _ := after.Player("A")
		require.Zero(t, a.Tokens)
		require.Empty(t, a.Neighbourhood.Plans)
		_, built := a.Neighbourhood.Building("Statue")
		require.True(t, built)
		require.Equal(t, 1, game.LocationsFrom(after.Locations).Find("Builder").Slots[0].Tokens)
	})

	t.Run("truck never discounts below one", func(t *testing.T) {
		s := twoPlayers(t)
		build(t, &s, "A", "Truck")
		a := &queued{turns: []game.Turn{game.SupplyTurn("A", "Windmill"), game.SupplyTurn("A", "Statue")}}
		e := restore(t, s, a, &queued{})

		require.NoError(t, e.Step(ctx))
		require.Equal(t, 2, tokens(e.Snapshot(), "A"), "Windmill still costs one")
		require.NoError(t, e.Step(ctx))
		require.NoError(t, e.Step(ctx))
		require.Equal(t, 1, tokens(e.Snapshot(), "A"), "Statue costs one")
	})

	t.Run("assembler builds supplied plans", func(t *testing.T) {
		s := twoPlayers(t)
		build(t, &s, "A", "Assembler")
		e := restore(t, s, &queued{turns: []game.Turn{game.SupplyTurn("A", "Windmill")}}, &queued{})

		require.NoError(t, e.Step(ctx))

		a, _ := e.Snapshot().Player("A")
		require.Empty(t, a.Neighbourhood.Plans)
		_, built := a.Neighbourhood.Building("Windmill")
		require.True(t, built)
		require.Equal(t, 2, a.Tokens)
	})

	t.Run("building a deed opens its location", func(t *testing.T) {
		s := twoPlayers(t)
		s.Players[0].Neighbourhood.AddPlan(basePlan(t, "Lotto"), false)
		e := restore(t, s, &queued{turns: []game.Turn{game.BuildTurn("A", "Lotto")}}, &queued{turns: []game.Turn{game.LottoTurn("B")}})

		require.NoError(t, e.Step(ctx))
		lotto := game.LocationsFrom(e.Snapshot().Locations).Find("Lotto")
		require.True(t, lotto.IsOpen())

		require.NoError(t, e.Step(ctx))
		b, _ := e.Snapshot().Player("B")
		require.Len(t, b.Neighbourhood.Plans, 1)
		require.True(t, b.Neighbourhood.Plans[0].Hidden, "Lotto draws face down")
		require.Equal(t, "Factory", b.Neighbourhood.Plans[0].Name)
		require.Zero(t, b.Tokens)
	})

	t.Run("museum counts culture after each turn", func(t *testing.T) {
		s := twoPlayers(t)
		build(t, &s, "A", "Museum", "Bridge")
		e := restore(t, s, &queued{}, &queued{})

		require.NoError(t, e.Step(ctx))

		a, _ := e.Snapshot().Player("A")
		museum, _ := a.Neighbourhood.Building("Museum")
		require.Equal(t, 3, museum.AdditionalStars)
	})
}

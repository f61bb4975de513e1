package game

import "fmt"

// TurnFactory enumerates legal turns. It never mutates what it reads, so strategies can
// share one instance.
type TurnFactory struct {
	hooks HookRegistry
}

func NewTurnFactory(hooks HookRegistry) *TurnFactory {
	return &TurnFactory{hooks: hooks}
}

// Turns returns every legal turn for the viewing player. Pass always comes first.
func (f *TurnFactory) Turns(v View) []Turn {
	me, ok := v.Me()
	if !ok {
		return nil
	}
	numPlayers := len(v.Players)
	locs := LocationsFrom(v.Locations)
	turns := []Turn{PassTurn(me.Label)}

	if price, ok := f.open(locs, ActionBuild); ok {
		for _, hp := range me.Neighbourhood.Plans {
			delta, err := CostDelta(f.hooks, TriggerBuild, me, hp.Plan, locs, numPlayers)
			if err == nil && me.Tokens >= price+delta {
				turns = append(turns, BuildTurn(me.Label, hp.Name))
			}
		}
	}

	if f.affordable(locs, ActionProduce, me.Tokens) {
		turns = append(turns, ProduceTurn(me.Label))
	}
	if f.affordable(locs, ActionLeadership, me.Tokens) {
		turns = append(turns, LeadershipTurn(me.Label, me.Label))
	}

	if _, ok := f.open(locs, ActionSupply); ok {
		for _, plan := range v.Offer {
			delta, err := CostDelta(f.hooks, TriggerSupply, me, plan, locs, numPlayers)
			if err == nil && me.Tokens >= plan.Cost+delta {
				turns = append(turns, SupplyTurn(me.Label, plan.Name))
			}
		}
	}

	if v.PlansInDeck >= 1 && f.affordable(locs, ActionLotto, me.Tokens) {
		turns = append(turns, LottoTurn(me.Label))
	}
	if f.affordable(locs, ActionWholesale, me.Tokens) {
		turns = append(turns, WholesaleTurn(me.Label))
	}
	return turns
}

// open returns the cheapest free slot price of the location mapped to kind.
func (f *TurnFactory) open(locs Locations, kind ActionKind) (int, bool) {
	l := locs.ForAction(kind)
	if l == nil || !l.Available() {
		return 0, false
	}
	return l.MinSlotPrice()
}

func (f *TurnFactory) affordable(locs Locations, kind ActionKind, tokens int) bool {
	price, ok := f.open(locs, kind)
	return ok && tokens >= price
}

// Validate checks that t is one of the turns offered to the viewing player.
func (f *TurnFactory) Validate(v View, t Turn) error {
	if t.PlayerName != v.Self {
		return fmt.Errorf("%w: %s is not on turn (%s)", ErrInvalidTurn, t.PlayerName, v.Self)
	}
	for _, legal := range f.Turns(v) {
		if legal == t {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidTurn, t)
}

// TurnsFor lists the legal turns of a player straight from a snapshot. Turns are only
// taken in the Development phase.
func (f *TurnFactory) TurnsFor(s Snapshot, label string) []Turn {
	if s.Phase != DevelopmentPhase {
		return nil
	}
	return f.Turns(s.View(label))
}

package game

import "fmt"

// Trigger is a point in the turn or round lifecycle where building hooks fire.
type Trigger int

const (
	TriggerBuild Trigger = iota
	TriggerSupply
	TriggerUpkeep
	TriggerTurn
)

var triggerNames = map[Trigger]string{
	TriggerBuild:  "build",
	TriggerSupply: "supply",
	TriggerUpkeep: "upkeep",
	TriggerTurn:   "turn",
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// HookContext is what a hook sees when it fires. Plan is set for build and supply hooks
// and names the plan being built or acquired.
type HookContext struct {
	Player     *PlayerState
	Building   *Building
	Locations  Locations
	Plan       *Plan
	NumPlayers int
}

// HookFunc may mutate the player's tokens or its own building directly, and may return one
// Effect for the engine to apply. A nil Effect means nothing further happens. Errors mean a
// broken card or location link.
type HookFunc func(h *HookContext) (Effect, error)

type Hook struct {
	Pre  HookFunc
	Post HookFunc
}

type Hooks map[Trigger]Hook

// HookRegistry attaches hooks to plans by name. Plans themselves stay pure data so they can
// live in a snapshot.
type HookRegistry map[string]Hooks

// Lookup returns the hook for a plan and trigger. Missing entries yield an empty Hook.
func (r HookRegistry) Lookup(plan string, trigger Trigger) Hook {
	if r == nil {
		return Hook{}
	}
	return r[plan][trigger]
}

// Merge returns a registry holding the entries of r overlaid by other.
func (r HookRegistry) Merge(other HookRegistry) HookRegistry {
	out := make(HookRegistry, len(r)+len(other))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Effect is the closed set of declarative results a hook can return.
type Effect interface {
	effect()
}

// AdjustCost changes the price of a build or supply action before affordability is checked.
type AdjustCost struct {
	Delta int
}

// TokensAll grants tokens to every player.
type TokensAll struct {
	Tokens int
}

// TokensAllOther grants tokens to every player except Except.
type TokensAllOther struct {
	Tokens int
	Except string
}

// AutoBuild builds the plan just acquired from the supply.
type AutoBuild struct{}

// SelectPlayer asks the owner to choose another player, who then gains Tokens.
type SelectPlayer struct {
	Tokens int
}

func (AdjustCost) effect()     {}
func (TokensAll) effect()      {}
func (TokensAllOther) effect() {}
func (AutoBuild) effect()      {}
func (SelectPlayer) effect()   {}

// CostDelta sums the AdjustCost results of the player's buildings for the trigger's pre
// hooks. It runs against copies so the caller's state is never touched.
func CostDelta(hooks HookRegistry, trigger Trigger, player PlayerState, plan Plan, locations Locations, numPlayers int) (int, error) {
	scratch := player.Clone()
	locs := locations.Clone()
	delta := 0
	for i := range scratch.Neighbourhood.Buildings {
		b := &scratch.Neighbourhood.Buildings[i]
		pre := hooks.Lookup(b.Name, trigger).Pre
		if pre == nil {
			continue
		}
		p := plan.Clone()
		eff, err := pre(&HookContext{Player: &scratch, Building: b, Locations: locs, Plan: &p, NumPlayers: numPlayers})
		if err != nil {
			return 0, fmt.Errorf("%s %s hook: %w", b.Name, trigger, err)
		}
		if adj, ok := eff.(AdjustCost); ok {
			delta += adj.Delta
		}
	}
	return delta, nil
}

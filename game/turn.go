package game

import (
	"encoding/json"
	"fmt"
)

// ActionKind discriminates the Action variants on the wire.
type ActionKind string

const (
	ActionPass       ActionKind = "Pass"
	ActionBuild      ActionKind = "Build"
	ActionProduce    ActionKind = "Produce"
	ActionLeadership ActionKind = "Leadership"
	ActionSupply     ActionKind = "Supply"
	ActionLotto      ActionKind = "Lotto"
	ActionWholesale  ActionKind = "Wholesale"
)

func (k ActionKind) valid() bool {
	switch k {
	case ActionPass, ActionBuild, ActionProduce, ActionLeadership, ActionSupply, ActionLotto, ActionWholesale:
		return true
	}
	return false
}

// Action is a tagged union keyed by Kind. Plan is set for Build and Supply, PlayerName for
// Leadership; every other field is empty.
type Action struct {
	Kind       ActionKind `json:"type"`
	Plan       string     `json:"plan,omitempty"`
	PlayerName string     `json:"playerName,omitempty"`
}

type Turn struct {
	PlayerName string `json:"playerName"`
	Action     Action `json:"action"`
}

func PassTurn(player string) Turn {
	return Turn{PlayerName: player, Action: Action{Kind: ActionPass}}
}

func BuildTurn(player, plan string) Turn {
	return Turn{PlayerName: player, Action: Action{Kind: ActionBuild, Plan: plan}}
}

func SupplyTurn(player, plan string) Turn {
	return Turn{PlayerName: player, Action: Action{Kind: ActionSupply, Plan: plan}}
}

func ProduceTurn(player string) Turn {
	return Turn{PlayerName: player, Action: Action{Kind: ActionProduce}}
}

func LeadershipTurn(player, target string) Turn {
	return Turn{PlayerName: player, Action: Action{Kind: ActionLeadership, PlayerName: target}}
}

func LottoTurn(player string) Turn {
	return Turn{PlayerName: player, Action: Action{Kind: ActionLotto}}
}

func WholesaleTurn(player string) Turn {
	return Turn{PlayerName: player, Action: Action{Kind: ActionWholesale}}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionBuild, ActionSupply:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Plan)
	case ActionLeadership:
		return fmt.Sprintf("%s(%s)", a.Kind, a.PlayerName)
	default:
		return string(a.Kind)
	}
}

func (t Turn) String() string {
	return fmt.Sprintf("%s: %s", t.PlayerName, t.Action)
}

// Check reports whether the fields match the variant named by Kind.
func (a Action) Check() error {
	if !a.Kind.valid() {
		return fmt.Errorf("%w: unknown action type %q", ErrMalformedTurn, a.Kind)
	}
	needsPlan := a.Kind == ActionBuild || a.Kind == ActionSupply
	needsPlayer := a.Kind == ActionLeadership
	switch {
	case needsPlan && a.Plan == "":
		return fmt.Errorf("%w: %s needs a plan", ErrMalformedTurn, a.Kind)
	case !needsPlan && a.Plan != "":
		return fmt.Errorf("%w: %s takes no plan", ErrMalformedTurn, a.Kind)
	case needsPlayer && a.PlayerName == "":
		return fmt.Errorf("%w: %s needs a player", ErrMalformedTurn, a.Kind)
	case !needsPlayer && a.PlayerName != "":
		return fmt.Errorf("%w: %s takes no player", ErrMalformedTurn, a.Kind)
	}
	return nil
}

func (a *Action) UnmarshalJSON(data []byte) error {
	type wire Action
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := Action(w).Check(); err != nil {
		return err
	}
	*a = Action(w)
	return nil
}

func (t *Turn) UnmarshalJSON(data []byte) error {
	type wire Turn
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.PlayerName == "" {
		return fmt.Errorf("%w: missing playerName", ErrMalformedTurn)
	}
	*t = Turn(w)
	return nil
}

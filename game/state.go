package game

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
)

type Phase int

const (
	DevelopmentPhase Phase = iota
	UpkeepPhase
	ScoringPhase
)

var phaseNames = map[Phase]string{
	DevelopmentPhase: "Development",
	UpkeepPhase:      "Upkeep",
	ScoringPhase:     "Scoring",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// PlayerState is the public record of a seat. The deciding strategy lives with the engine.
type PlayerState struct {
	Label         string        `json:"label"`
	Age           int           `json:"age"`
	Tokens        int           `json:"tokens"`
	Neighbourhood Neighbourhood `json:"neighbourhood"`
}

func (p PlayerState) Clone() PlayerState {
	p.Neighbourhood = p.Neighbourhood.Clone()
	return p
}

// Snapshot is a complete description of a game between two turns. Nothing outside it
// influences future play.
type Snapshot struct {
	Round             int           `json:"roundNumber"`
	Phase             Phase         `json:"phase"`
	StartingPlayer    string        `json:"startingPlayerToken"`
	PlayerToAct       string        `json:"playerToTakeTurn"`
	ConsecutivePasses int           `json:"numConsecutivePasses"`
	Players           []PlayerState `json:"players"`
	Locations         []Location    `json:"locations"`
	Offer             []Plan        `json:"planSupply"`
	Deck              []Plan        `json:"deck"`
	Capacity          int           `json:"supplyCapacity"`
}

// Copy returns a deep copy of the snapshot.
func (s Snapshot) Copy() Snapshot {
	out := s
	out.Players = make([]PlayerState, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}
	out.Locations = make([]Location, len(s.Locations))
	for i, l := range s.Locations {
		out.Locations[i] = l.Clone()
	}
	out.Offer = ClonePlans(s.Offer)
	out.Deck = ClonePlans(s.Deck)
	return out
}

// ClonePlans deep-copies a plan list.
func ClonePlans(plans []Plan) []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		out[i] = p.Clone()
	}
	return out
}

// Player returns the record with the given label.
func (s Snapshot) Player(label string) (PlayerState, bool) {
	for _, p := range s.Players {
		if p.Label == label {
			return p, true
		}
	}
	return PlayerState{}, false
}

// Labels returns the seat labels in turn order.
func (s Snapshot) Labels() []string {
	out := make([]string, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Label
	}
	return out
}

// Hash fingerprints the canonical JSON form of the snapshot.
func (s Snapshot) Hash() StateHash {
	data, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("snapshot hash: %v", err))
	}
	hasher := fnv.New64a()
	hasher.Write(data)
	return StateHash(hasher.Sum64())
}

// View is what a single player is allowed to see: other neighbourhoods are masked and the
// deck is reduced to its size.
type View struct {
	Self              string        `json:"self"`
	Round             int           `json:"roundNumber"`
	StartingPlayer    string        `json:"startingPlayerToken"`
	ConsecutivePasses int           `json:"numConsecutivePasses"`
	Players           []PlayerState `json:"players"`
	Locations         []Location    `json:"locations"`
	Offer             []Plan        `json:"planSupply"`
	PlansInDeck       int           `json:"numPlansInDeck"`
}

// View projects the snapshot for one player.
func (s Snapshot) View(label string) View {
	v := View{
		Self:              label,
		Round:             s.Round,
		StartingPlayer:    s.StartingPlayer,
		ConsecutivePasses: s.ConsecutivePasses,
		Players:           make([]PlayerState, len(s.Players)),
		Locations:         make([]Location, len(s.Locations)),
		Offer:             ClonePlans(s.Offer),
		PlansInDeck:       len(s.Deck),
	}
	for i, p := range s.Players {
		p = p.Clone()
		if p.Label != label {
			p.Neighbourhood = p.Neighbourhood.Public()
		}
		v.Players[i] = p
	}
	for i, l := range s.Locations {
		v.Locations[i] = l.Clone()
	}
	return v
}

// Me returns the viewing player's own record.
func (v View) Me() (PlayerState, bool) {
	for _, p := range v.Players {
		if p.Label == v.Self {
			return p, true
		}
	}
	return PlayerState{}, false
}

package gamemaster

import (
	"context"
	"mintworks/game"

	"github.com/rs/zerolog"
)

// Position is an immutable game state for search algorithms: it offers move generation and
// one-turn simulation and nothing else.
type Position struct {
	snapshot game.Snapshot
	hooks    game.HookRegistry
	factory  *game.TurnFactory
	winner   string
}

var _ game.State = (*Position)(nil)

func NewPosition(s game.Snapshot, hooks game.HookRegistry) *Position {
	return &Position{
		snapshot: s.Copy(),
		hooks:    hooks,
		factory:  game.NewTurnFactory(hooks),
	}
}

func (p *Position) Snapshot() game.Snapshot {
	return p.snapshot.Copy()
}

func (p *Position) Player() string {
	return actor(p.snapshot)
}

// LegalMoves lists the turns the actor may choose once its turn.pre hooks have fired.
func (p *Position) LegalMoves() []game.Turn {
	if p.snapshot.Phase != game.DevelopmentPhase {
		return nil
	}
	m := &StateManager{snapshot: p.snapshot, turn: game.PassTurn(p.Player()), hooks: p.hooks, log: zerolog.Nop()}
	e, err := m.prepare(context.Background())
	if err != nil {
		return nil
	}
	return p.factory.Turns(e.View(p.Player()))
}

func (p *Position) Play(turn game.Turn) (game.State, error) {
	m, err := NewStateManager(p.snapshot, turn, WithHooks(p.hooks))
	if err != nil {
		return nil, err
	}
	next, err := m.Simulate(context.Background())
	if err != nil {
		return nil, err
	}
	out := &Position{snapshot: next, hooks: p.hooks, factory: p.factory}
	if res, ok := m.Result(); ok {
		out.winner = res.Winner
	}
	return out, nil
}

func (p *Position) Hash() game.StateHash {
	return p.snapshot.Hash()
}

// Winner is empty until the position is terminal.
func (p *Position) Winner() string {
	return p.winner
}

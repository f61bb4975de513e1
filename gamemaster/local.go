package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"mintworks/engine"
	"mintworks/game"

	"github.com/rs/zerolog"
)

var ErrNoOtherPlayer = errors.New("no other player to select")

// StateManager replays exactly one turn on top of a snapshot. The turn is checked when the
// manager is built, before anything is simulated.
type StateManager struct {
	snapshot game.Snapshot
	turn     game.Turn
	hooks    game.HookRegistry
	seed     uint64
	log      zerolog.Logger
	result   *game.Result
}

type Option func(*StateManager)

func WithHooks(hooks game.HookRegistry) Option {
	return func(m *StateManager) {
		m.hooks = hooks
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *StateManager) {
		m.log = logger
	}
}

// WithSeed seeds the random tiebreak used if the replayed turn ends the game.
func WithSeed(seed uint64) Option {
	return func(m *StateManager) {
		m.seed = seed
	}
}

func actor(s game.Snapshot) string {
	if s.PlayerToAct != "" {
		return s.PlayerToAct
	}
	return s.StartingPlayer
}

func NewStateManager(s game.Snapshot, turn game.Turn, opts ...Option) (*StateManager, error) {
	m := &StateManager{
		snapshot: s.Copy(),
		turn:     turn,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	switch s.Phase {
	case game.DevelopmentPhase:
	case game.ScoringPhase:
		return nil, game.ErrGameOver
	default:
		return nil, fmt.Errorf("%w: no turns in %s phase", game.ErrInvalidTurn, s.Phase)
	}
	if err := turn.Action.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", game.ErrInvalidTurn, err)
	}

	// The actor decides after its turn.pre hooks, so the turn is checked against that view.
	e, err := m.prepare(context.Background())
	if err != nil {
		return nil, err
	}
	if err := game.NewTurnFactory(m.hooks).Validate(e.View(actor(s)), turn); err != nil {
		return nil, err
	}
	return m, nil
}

// prepare rebuilds an engine from the snapshot with scripted strategies and fires the
// actor's turn.pre hooks. The stored snapshot is never touched.
func (m *StateManager) prepare(ctx context.Context) (*engine.Engine, error) {
	factory := game.NewTurnFactory(m.hooks)
	strategies := map[string]game.Strategy{}
	for _, p := range m.snapshot.Players {
		strategies[p.Label] = &scripted{owner: p.Label, turn: m.turn, factory: factory}
	}

	e, err := engine.FromSnapshot(m.snapshot, strategies,
		engine.WithHooks(m.hooks),
		engine.WithSeed(m.seed),
		engine.WithLogger(m.log),
	)
	if err != nil {
		return nil, fmt.Errorf("rebuild engine: %w", err)
	}
	if err := e.BeginTurn(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Simulate rebuilds an engine from the snapshot, plays the scripted turn and exports the
// resulting snapshot. If the turn ends the Development phase the Upkeep phase runs too.
func (m *StateManager) Simulate(ctx context.Context) (game.Snapshot, error) {
	e, err := m.prepare(ctx)
	if err != nil {
		return game.Snapshot{}, err
	}
	if err := e.Step(ctx); err != nil {
		return game.Snapshot{}, err
	}
	if res, ok := e.Result(); ok {
		m.result = &res
	}
	return e.Snapshot(), nil
}

// Result returns the scoring result if the simulated turn ended the game.
func (m *StateManager) Result() (game.Result, bool) {
	if m.result == nil {
		return game.Result{}, false
	}
	return *m.result, true
}

// scripted answers every decision of a replay without asking anyone.
type scripted struct {
	owner   string
	turn    game.Turn
	factory *game.TurnFactory
}

func (s *scripted) TakeTurn(ctx context.Context, view game.View) (game.Turn, error) {
	if view.Self == s.turn.PlayerName {
		return s.turn, nil
	}
	turns := s.factory.Turns(view)
	if len(turns) == 0 {
		return game.PassTurn(view.Self), nil
	}
	return turns[0], nil
}

func (s *scripted) SelectPlayerForEffect(ctx context.Context, effect game.SelectPlayer, players []string) (string, error) {
	for _, p := range players {
		if p != s.owner {
			return p, nil
		}
	}
	return "", ErrNoOtherPlayer
}

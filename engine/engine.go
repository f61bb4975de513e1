package engine

import (
	"errors"
	"fmt"
	"mintworks/experiments/metrics"
	"mintworks/game"
	"mintworks/meta"
	"mintworks/utils"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

var (
	ErrNotEnoughPlayers = errors.New("need at least two players")
	ErrDuplicateLabel   = errors.New("duplicate player label")
	ErrMissingStrategy  = errors.New("no strategy for player")
)

// Seat is a player joining a live game.
type Seat struct {
	Label    string
	Age      int
	Strategy game.Strategy
}

// Outcome is handed to the end hook once the engine reaches Scoring. Result is nil when the
// game was aborted by Err.
type Outcome struct {
	Result *game.Result
	Err    error
	Metric metrics.GameMetric
}

type seat struct {
	state    game.PlayerState
	strategy game.Strategy
}

// Engine owns one game: its players, locations and plan supply. It is not safe for
// concurrent use; the only suspension points are calls into player strategies.
type Engine struct {
	players   []*seat
	locations game.Locations
	supply    *game.PlanSupply
	hooks     game.HookRegistry
	factory   *game.TurnFactory

	round          int
	phase          game.Phase
	startingPlayer string
	toAct          int
	passes         int
	begun          bool

	result *game.Result
	err    error
	metric metrics.GameMetric
	paused atomic.Bool

	id             uuid.UUID
	seed           uint64
	rng            *rand.Rand
	log            zerolog.Logger
	endHook        func(Outcome)
	collector      metrics.Collector
	startingTokens int
	capacity       int
}

type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// WithHooks sets the registry that attaches hooks to plans by name.
func WithHooks(hooks game.HookRegistry) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithSeed seeds the deck shuffle and the final scoring tiebreak.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithEndHook is called once when the game ends, normally or not.
func WithEndHook(fn func(Outcome)) Option {
	return func(e *Engine) {
		e.endHook = fn
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

func WithStartingTokens(n int) Option {
	return func(e *Engine) {
		e.startingTokens = n
	}
}

func WithCapacity(n int) Option {
	return func(e *Engine) {
		e.capacity = n
	}
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		id:             uuid.New(),
		seed:           uint64(time.Now().UnixNano()),
		log:            zerolog.Nop(),
		collector:      metrics.NewDummyCollector(),
		startingTokens: meta.STARTING_TOKENS,
		capacity:       meta.SUPPLY_CAPACITY,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed))
	e.factory = game.NewTurnFactory(e.hooks)
	e.log = e.log.With().Str("game", e.id.String()).Logger()
	return e
}

// New sets up a fresh game: the deck is shuffled, the supply filled and the starting player
// token goes to the first seat.
func New(seats []Seat, deck []game.Plan, opts ...Option) (*Engine, error) {
	if len(seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	e := newEngine(opts)

	seen := map[string]bool{}
	for _, s := range seats {
		if seen[s.Label] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, s.Label)
		}
		if s.Strategy == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingStrategy, s.Label)
		}
		seen[s.Label] = true
		e.players = append(e.players, &seat{
			state: game.PlayerState{
				Label:         s.Label,
				Age:           s.Age,
				Tokens:        e.startingTokens,
				Neighbourhood: game.Neighbourhood{Plans: []game.HandPlan{}, Buildings: []game.Building{}},
			},
			strategy: s.Strategy,
		})
	}

	shuffled := game.ClonePlans(deck)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	e.supply = game.NewPlanSupply(shuffled, e.capacity)
	e.locations = game.DefaultLocations(len(seats))
	e.round = 1
	e.phase = game.DevelopmentPhase
	e.startingPlayer = seats[0].Label
	e.toAct = 0

	e.collector.Start(e.id, e.seed, e.startingPlayer, len(e.players))
	e.log.Info().Msgf("player %s is starting", e.startingPlayer)
	return e, nil
}

// FromSnapshot rebuilds an engine exactly as serialized. The supply is not refilled and the
// deck is not shuffled.
func FromSnapshot(s game.Snapshot, strategies map[string]game.Strategy, opts ...Option) (*Engine, error) {
	if len(s.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	e := newEngine(opts)

	seen := map[string]bool{}
	for _, p := range s.Players {
		if seen[p.Label] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, p.Label)
		}
		seen[p.Label] = true
		strategy, ok := strategies[p.Label]
		if !ok || strategy == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingStrategy, p.Label)
		}
		e.players = append(e.players, &seat{state: p.Clone(), strategy: strategy})
	}

	capacity := s.Capacity
	if capacity <= 0 {
		capacity = e.capacity
	}
	e.capacity = capacity
	e.supply = game.RestorePlanSupply(s.Offer, s.Deck, capacity)
	e.locations = game.LocationsFrom(s.Locations)
	e.round = s.Round
	e.phase = s.Phase
	e.passes = s.ConsecutivePasses
	e.startingPlayer = s.StartingPlayer
	if e.index(e.startingPlayer) < 0 {
		return nil, fmt.Errorf("starting player %q: %w", s.StartingPlayer, game.ErrUnknownPlayer)
	}

	actor := s.PlayerToAct
	if actor == "" {
		actor = s.StartingPlayer
	}
	e.toAct = e.index(actor)
	if e.toAct < 0 {
		return nil, fmt.Errorf("player to act %q: %w", actor, game.ErrUnknownPlayer)
	}

	e.collector.Start(e.id, e.seed, e.startingPlayer, len(e.players))
	return e, nil
}

func (e *Engine) index(label string) int {
	return utils.FindIndex(e.labels(), label)
}

func (e *Engine) labels() []string {
	out := make([]string, len(e.players))
	for i, p := range e.players {
		out[i] = p.state.Label
	}
	return out
}

func (e *Engine) states() []game.PlayerState {
	out := make([]game.PlayerState, len(e.players))
	for i, p := range e.players {
		out[i] = p.state.Clone()
	}
	return out
}

// Snapshot exports the complete game state.
func (e *Engine) Snapshot() game.Snapshot {
	return game.Snapshot{
		Round:             e.round,
		Phase:             e.phase,
		StartingPlayer:    e.startingPlayer,
		PlayerToAct:       e.players[e.toAct].state.Label,
		ConsecutivePasses: e.passes,
		Players:           e.states(),
		Locations:         e.locations.Values(),
		Offer:             game.ClonePlans(e.supply.Offer),
		Deck:              game.ClonePlans(e.supply.Deck),
		Capacity:          e.capacity,
	}
}

// View projects the current state for one player.
func (e *Engine) View(label string) game.View {
	return e.Snapshot().View(label)
}

func (e *Engine) Phase() game.Phase {
	return e.phase
}

func (e *Engine) Round() int {
	return e.round
}

func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Result returns the scoring result once the game has ended normally.
func (e *Engine) Result() (game.Result, bool) {
	if e.result == nil {
		return game.Result{}, false
	}
	return *e.result, true
}

// Err returns the error that aborted the game, if any.
func (e *Engine) Err() error {
	return e.err
}

func (e *Engine) Metric() metrics.GameMetric {
	return e.metric
}

package metrics

import (
	"mintworks/game"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type GameMetric struct {
	ID             uuid.UUID
	Seed           uint64
	Players        int
	StartingPlayer string
	Winner         string // "" when the game was aborted
	Aborted        bool
	Rounds         int
	Turns          int
	Passes         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start(id uuid.UUID, seed uint64, startingPlayer string, players int)
	AddTurn(kind game.ActionKind)
	AddRound()
	Complete(winner string, err error) GameMetric
}

type collector struct {
	id             uuid.UUID
	seed           uint64
	startingPlayer string
	players        int
	startTime      time.Time
	rounds         atomic.Int32
	turns          atomic.Int32
	passes         atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(id uuid.UUID, seed uint64, startingPlayer string, players int) {
	m.startTime = time.Now()
	m.id = id
	m.seed = seed
	m.startingPlayer = startingPlayer
	m.players = players
	m.rounds.Store(1)
}

func (m *collector) AddTurn(kind game.ActionKind) {
	m.turns.Add(1)
	if kind == game.ActionPass {
		m.passes.Add(1)
	}
}

func (m *collector) AddRound() {
	m.rounds.Add(1)
}

func (m *collector) Complete(winner string, err error) GameMetric {
	end := time.Now()
	return GameMetric{
		ID:             m.id,
		Seed:           m.seed,
		Players:        m.players,
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		Aborted:        err != nil,
		Rounds:         int(m.rounds.Load()),
		Turns:          int(m.turns.Load()),
		Passes:         int(m.passes.Load()),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(id uuid.UUID, seed uint64, startingPlayer string, players int) {}
func (m *dummyCollector) AddTurn(kind game.ActionKind)                                       {}
func (m *dummyCollector) AddRound()                                                          {}
func (m *dummyCollector) Complete(winner string, err error) GameMetric                       { return GameMetric{} }

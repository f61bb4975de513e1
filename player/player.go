package player

import (
	"context"
	"errors"
	"mintworks/game"

	"golang.org/x/exp/rand"
)

var ErrNoTurns = errors.New("no legal turns")

// Random picks uniformly among legal turns.
type Random struct {
	Label   string
	factory *game.TurnFactory
	rng     *rand.Rand
}

// NewRandom creates a random player that shares the given turn factory.
func NewRandom(label string, factory *game.TurnFactory, seed uint64) *Random {
	return &Random{
		Label:   label,
		factory: factory,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// TakeTurn decides on a turn.
func (p *Random) TakeTurn(ctx context.Context, view game.View) (game.Turn, error) {
	turns := p.factory.Turns(view)
	if len(turns) == 0 {
		return game.Turn{}, ErrNoTurns
	}
	return turns[p.rng.Intn(len(turns))], nil
}

func (p *Random) SelectPlayerForEffect(ctx context.Context, effect game.SelectPlayer, players []string) (string, error) {
	others := make([]string, 0, len(players))
	for _, label := range players {
		if label != p.Label {
			others = append(others, label)
		}
	}
	if len(others) == 0 {
		return "", game.ErrUnknownPlayer
	}
	return others[p.rng.Intn(len(others))], nil
}

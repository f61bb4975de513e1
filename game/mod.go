package game

import "context"

type StateHash uint64

// Strategy decides for one seat. TakeTurn must return one of the turns a TurnFactory offers
// for the view; SelectPlayerForEffect must return another label from players.
type Strategy interface {
	TakeTurn(ctx context.Context, view View) (Turn, error)
	SelectPlayerForEffect(ctx context.Context, effect SelectPlayer, players []string) (string, error)
}

// State is an immutable game position for search algorithms. Play always returns a new
// position and leaves the receiver untouched.
type State interface {
	Player() string
	LegalMoves() []Turn
	Play(Turn) (State, error)
	Hash() StateHash
	Winner() string
}

package game

import (
	"mintworks/meta"
	"sort"

	"golang.org/x/exp/rand"
)

// FavorLargeNeighbourhood sets the direction of the neighbourhood size tiebreak.
var FavorLargeNeighbourhood = true

type Score struct {
	Player string `json:"player"`
	Stars  int    `json:"stars"`
	Size   int    `json:"plans"`
	Tokens int    `json:"tokens"`
	Age    int    `json:"age"`
}

type Result struct {
	Winner string  `json:"winner"`
	Scores []Score `json:"scores"`
}

func ageDistance(age int) int {
	if age > meta.REFERENCE_AGE {
		return age - meta.REFERENCE_AGE
	}
	return meta.REFERENCE_AGE - age
}

func sizeKey(size int) int {
	if FavorLargeNeighbourhood {
		return size
	}
	return -size
}

// tiebreaks are applied in order; higher keys win.
var tiebreaks = []func(Score) int{
	func(s Score) int { return s.Stars },
	func(s Score) int { return sizeKey(s.Size) },
	func(s Score) int { return s.Tokens },
	func(s Score) int { return -ageDistance(s.Age) },
}

func keepBest(scores []Score, key func(Score) int) []Score {
	best := key(scores[0])
	for _, s := range scores[1:] {
		if k := key(s); k > best {
			best = k
		}
	}
	out := []Score{}
	for _, s := range scores {
		if key(s) == best {
			out = append(out, s)
		}
	}
	return out
}

// FindWinner ranks the players: stars, neighbourhood size, tokens, age closest to 42 and
// finally a uniform random pick. A nil rng resolves the last stage to the first seat.
func FindWinner(players []PlayerState, rng *rand.Rand) Result {
	if len(players) == 0 {
		return Result{}
	}
	scores := make([]Score, len(players))
	for i, p := range players {
		scores[i] = Score{
			Player: p.Label,
			Stars:  p.Neighbourhood.Stars(),
			Size:   p.Neighbourhood.Size(),
			Tokens: p.Tokens,
			Age:    p.Age,
		}
	}

	tied := scores
	for _, key := range tiebreaks {
		if len(tied) == 1 {
			break
		}
		tied = keepBest(tied, key)
	}
	winner := tied[0]
	if len(tied) > 1 && rng != nil {
		winner = tied[rng.Intn(len(tied))]
	}

	board := append([]Score{}, scores...)
	sort.SliceStable(board, func(i, j int) bool {
		for _, key := range tiebreaks {
			if a, b := key(board[i]), key(board[j]); a != b {
				return a > b
			}
		}
		return false
	})
	for i, s := range board {
		if s.Player == winner.Player {
			copy(board[1:i+1], board[:i])
			board[0] = s
			break
		}
	}
	return Result{Winner: winner.Player, Scores: board}
}

// meta/meta.go
package meta

// SCORE_THRESHOLD is the building score that ends the game at the next upkeep.
const SCORE_THRESHOLD = 7

// SUPPLY_CAPACITY defines the number of face-up plans in the supply.
const SUPPLY_CAPACITY = 3

// REFERENCE_AGE is the age the fourth tiebreak compares players against.
const REFERENCE_AGE = 42

// STARTING_TOKENS defines the mint tokens each player starts with.
const STARTING_TOKENS = 3

const (
	PRODUCE_TOKENS    = 2
	WHOLESALE_TOKENS  = 2
	LEADERSHIP_TOKENS = 1
	UPKEEP_TOKENS     = 1
)

// FOUR_PLAYER_GAME is the player count from which core locations get extra slots.
const FOUR_PLAYER_GAME = 4

// MAX_ROUNDS guards the live loop against strategies that never end a game.
const MAX_ROUNDS = 100

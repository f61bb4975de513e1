package game

import "errors"

var (
	ErrInvalidTurn       = errors.New("invalid turn")
	ErrMalformedTurn     = errors.New("malformed turn")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoAvailableSlot   = errors.New("no available slots")
	ErrPlanNotInHand     = errors.New("plan not in hand")
	ErrPlanNotInSupply   = errors.New("plan not in supply")
	ErrMissingLocation   = errors.New("location not found")
	ErrUnknownPlayer     = errors.New("selected player not found")
	ErrDeckEmpty         = errors.New("no plans left in deck")
	ErrGameOver          = errors.New("game is over - no turns allowed")
	ErrInvalidEffect     = errors.New("effect not allowed here")
)

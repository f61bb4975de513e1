package game

import (
	"fmt"
	"mintworks/utils"
)

// PlanSupply is the face-up plan offer backed by a draw pile. Cards are drawn from the end of Deck.
type PlanSupply struct {
	Capacity int
	Offer    []Plan
	Deck     []Plan
}

// NewPlanSupply fills the offer from deck right away.
func NewPlanSupply(deck []Plan, capacity int) *PlanSupply {
	ps := RestorePlanSupply(nil, deck, capacity)
	ps.Refill()
	return ps
}

// RestorePlanSupply rebuilds a supply exactly as serialized, without refilling.
func RestorePlanSupply(offer, deck []Plan, capacity int) *PlanSupply {
	ps := &PlanSupply{
		Capacity: capacity,
		Offer:    make([]Plan, 0, capacity),
		Deck:     make([]Plan, 0, len(deck)),
	}
	for _, p := range offer {
		ps.Offer = append(ps.Offer, p.Clone())
	}
	for _, p := range deck {
		ps.Deck = append(ps.Deck, p.Clone())
	}
	return ps
}

// Take removes a named plan from the offer.
func (ps *PlanSupply) Take(name string) (Plan, error) {
	i := utils.FindIndexFunc(ps.Offer, func(p Plan) bool { return p.Name == name })
	if i < 0 {
		return Plan{}, fmt.Errorf("take %s: %w", name, ErrPlanNotInSupply)
	}
	plan := ps.Offer[i]
	ps.Offer = append(ps.Offer[:i], ps.Offer[i+1:]...)
	return plan, nil
}

func (ps *PlanSupply) pop() (Plan, bool) {
	if len(ps.Deck) == 0 {
		return Plan{}, false
	}
	last := len(ps.Deck) - 1
	plan := ps.Deck[last]
	ps.Deck = ps.Deck[:last]
	return plan, true
}

// Refill tops up the offer to capacity. It returns false when the deck runs out first.
func (ps *PlanSupply) Refill() bool {
	for len(ps.Offer) < ps.Capacity {
		plan, ok := ps.pop()
		if !ok {
			return false
		}
		ps.Offer = append(ps.Offer, plan)
	}
	return true
}

// LottoDraw draws the top plan of the deck face down.
func (ps *PlanSupply) LottoDraw() (HandPlan, bool) {
	plan, ok := ps.pop()
	if !ok {
		return HandPlan{}, false
	}
	return HandPlan{Plan: plan, Hidden: true}, true
}

func (ps *PlanSupply) DeckSize() int {
	return len(ps.Deck)
}

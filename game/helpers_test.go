package game

func plan(name string, cost, stars int, types ...PlanType) Plan {
	if len(types) == 0 {
		types = []PlanType{Culture}
	}
	return Plan{Name: name, Cost: cost, Stars: stars, Types: types}
}

func player(label string, tokens int) PlayerState {
	return PlayerState{
		Label:         label,
		Age:           30,
		Tokens:        tokens,
		Neighbourhood: Neighbourhood{Plans: []HandPlan{}, Buildings: []Building{}},
	}
}

// twoPlayerSnapshot is a fresh two player game with A on turn.
func twoPlayerSnapshot() Snapshot {
	return Snapshot{
		Round:          1,
		Phase:          DevelopmentPhase,
		StartingPlayer: "A",
		PlayerToAct:    "A",
		Players:        []PlayerState{player("A", 3), player("B", 3)},
		Locations:      DefaultLocations(2).Values(),
		Offer:          []Plan{plan("Windmill", 1, 1), plan("Statue", 2, 2), plan("Gardens", 3, 3)},
		Deck:           []Plan{plan("Mine", 2, 1, Production), plan("Workshop", 3, 2, Production)},
		Capacity:       3,
	}
}

package game

import (
	"fmt"
	"mintworks/utils"
)

// Neighbourhood holds a player's hand plans and buildings. A card is in exactly one list.
type Neighbourhood struct {
	Plans     []HandPlan `json:"plans"`
	Buildings []Building `json:"buildings"`
}

func (n *Neighbourhood) planIndex(name string) int {
	return utils.FindIndexFunc(n.Plans, func(p HandPlan) bool { return p.Name == name })
}

func (n *Neighbourhood) buildingIndex(name string) int {
	return utils.FindIndexFunc(n.Buildings, func(b Building) bool { return b.Name == name })
}

func (n *Neighbourhood) Plan(name string) (*HandPlan, bool) {
	i := n.planIndex(name)
	if i < 0 {
		return nil, false
	}
	return &n.Plans[i], true
}

func (n *Neighbourhood) Building(name string) (*Building, bool) {
	i := n.buildingIndex(name)
	if i < 0 {
		return nil, false
	}
	return &n.Buildings[i], true
}

func (n *Neighbourhood) AddPlan(plan Plan, hidden bool) {
	n.Plans = append(n.Plans, HandPlan{Plan: plan.Clone(), Hidden: hidden})
}

func (n *Neighbourhood) AddBuilding(b Building) {
	n.Buildings = append(n.Buildings, b)
}

func (n *Neighbourhood) RemovePlan(name string) {
	n.Plans = utils.Filter(n.Plans, func(p HandPlan) bool { return p.Name != name })
}

// RemoveBuilding demolishes a building and closes the location it opened.
func (n *Neighbourhood) RemoveBuilding(name string, locations Locations) {
	if b, ok := n.Building(name); ok && b.Location != "" {
		if l := locations.Find(b.Location); l != nil {
			l.Close()
		}
	}
	n.Buildings = utils.Filter(n.Buildings, func(b Building) bool { return b.Name != name })
}

// Build turns a hand plan into a fresh building, opening its linked location if closed.
func (n *Neighbourhood) Build(name string, locations Locations, numPlayers int) (*Building, error) {
	hp, ok := n.Plan(name)
	if !ok {
		return nil, fmt.Errorf("build %s: %w", name, ErrPlanNotInHand)
	}
	plan := hp.Plan
	if plan.Location != "" {
		l := locations.Find(plan.Location)
		if l == nil {
			return nil, fmt.Errorf("build %s: %s: %w", name, plan.Location, ErrMissingLocation)
		}
		if !l.IsOpen() {
			l.Open(numPlayers)
		}
	}
	n.RemovePlan(name)
	n.AddBuilding(Building{Plan: plan})
	return &n.Buildings[len(n.Buildings)-1], nil
}

// Stars sums base and additional stars over all buildings.
func (n *Neighbourhood) Stars() int {
	total := 0
	for _, b := range n.Buildings {
		total += b.TotalStars()
	}
	return total
}

func (n *Neighbourhood) Size() int {
	return len(n.Plans) + len(n.Buildings)
}

// TypeCount counts type tags across buildings, duplicates included.
func (n *Neighbourhood) TypeCount(t PlanType) int {
	count := 0
	for _, b := range n.Buildings {
		for _, pt := range b.Types {
			if pt == t {
				count++
			}
		}
	}
	return count
}

func (n Neighbourhood) Clone() Neighbourhood {
	out := Neighbourhood{
		Plans:     make([]HandPlan, len(n.Plans)),
		Buildings: make([]Building, len(n.Buildings)),
	}
	for i, p := range n.Plans {
		out.Plans[i] = HandPlan{Plan: p.Plan.Clone(), Hidden: p.Hidden}
	}
	for i, b := range n.Buildings {
		b.Plan = b.Plan.Clone()
		out.Buildings[i] = b
	}
	return out
}

// Public masks hidden hand plans for other players' eyes.
func (n Neighbourhood) Public() Neighbourhood {
	out := n.Clone()
	for i, p := range out.Plans {
		if p.Hidden {
			out.Plans[i] = HandPlan{Plan: Plan{Name: HiddenPlanName, Types: []PlanType{}}, Hidden: true}
		}
	}
	return out
}

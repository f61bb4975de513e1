package game

type PlanType string

const (
	Culture    PlanType = "Culture"
	Production PlanType = "Production"
	Utility    PlanType = "Utility"
	DeedType   PlanType = "Deed"
)

// HiddenPlanName replaces the name of face-down plans in public views.
const HiddenPlanName = "HIDDEN"

// Plan is an immutable card template. Location names a location the built card opens.
type Plan struct {
	Name        string     `json:"name"`
	Cost        int        `json:"cost"`
	Stars       int        `json:"stars"`
	Types       []PlanType `json:"types"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
}

func (p Plan) Clone() Plan {
	p.Types = append([]PlanType{}, p.Types...)
	return p
}

func (p Plan) HasType(t PlanType) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// HandPlan is a plan held before being built.
type HandPlan struct {
	Plan
	Hidden bool `json:"hidden,omitempty"`
}

// BuildingState is per-card progress written only by the card's own hooks.
type BuildingState struct {
	Counter int `json:"counter,omitempty"`
}

// Building is a plan that has been built into a neighbourhood.
type Building struct {
	Plan
	AdditionalStars int           `json:"additionalStars"`
	State           BuildingState `json:"state"`
}

func (b Building) TotalStars() int {
	return b.Stars + b.AdditionalStars
}

package game

import (
	"fmt"
	"mintworks/meta"
)

type LocationCategory string

const (
	Core     LocationCategory = "Core"
	Deed     LocationCategory = "Deed"
	Advanced LocationCategory = "Advanced"
)

// Location is a shared placement site. A closed location has no slots.
type Location struct {
	Name                 string           `json:"name"`
	Category             LocationCategory `json:"category"`
	Effect               string           `json:"effect,omitempty"`
	Action               ActionKind       `json:"action,omitempty"`
	SlotPrice            int              `json:"slotPrice"`
	SlotCount            int              `json:"slotCount"`
	SlotCountFourPlayers int              `json:"slotCountFourPlayers,omitempty"`
	Slots                []Slot           `json:"slots"`
}

func (l *Location) IsOpen() bool {
	return len(l.Slots) > 0
}

// Available reports whether at least one slot holds no tokens.
func (l *Location) Available() bool {
	for _, s := range l.Slots {
		if s.Available() {
			return true
		}
	}
	return false
}

// MinSlotPrice returns the cheapest base price among available slots.
func (l *Location) MinSlotPrice() (int, bool) {
	price, found := 0, false
	for _, s := range l.Slots {
		if !s.Available() {
			continue
		}
		if !found || s.BasePrice < price {
			price, found = s.BasePrice, true
		}
	}
	return price, found
}

// UseSlot places tokens on the first available slot.
func (l *Location) UseSlot(tokens int) error {
	for i := range l.Slots {
		if l.Slots[i].Available() {
			l.Slots[i].Fill(tokens)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", l.Name, ErrNoAvailableSlot)
}

func (l *Location) EmptySlots() {
	for i := range l.Slots {
		l.Slots[i].Empty()
	}
}

// Open lays out fresh empty slots. Locations with a four-player count grow from four players up.
func (l *Location) Open(numPlayers int) {
	n := l.SlotCount
	if numPlayers >= meta.FOUR_PLAYER_GAME && l.SlotCountFourPlayers > 0 {
		n = l.SlotCountFourPlayers
	}
	l.Slots = make([]Slot, n)
	for i := range l.Slots {
		l.Slots[i] = Slot{BasePrice: l.SlotPrice}
	}
}

func (l *Location) Close() {
	l.Slots = []Slot{}
}

func (l Location) Clone() Location {
	l.Slots = append([]Slot{}, l.Slots...)
	return l
}

type Locations []*Location

// Find returns the location with the given name or nil.
func (ls Locations) Find(name string) *Location {
	for _, l := range ls {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// ForAction returns the location mapped to an action kind or nil.
func (ls Locations) ForAction(kind ActionKind) *Location {
	for _, l := range ls {
		if l.Action == kind {
			return l
		}
	}
	return nil
}

func (ls Locations) EmptyAll() {
	for _, l := range ls {
		l.EmptySlots()
	}
}

func (ls Locations) Clone() Locations {
	out := make(Locations, len(ls))
	for i, l := range ls {
		c := l.Clone()
		out[i] = &c
	}
	return out
}

// Values copies the locations into their wire form.
func (ls Locations) Values() []Location {
	out := make([]Location, len(ls))
	for i, l := range ls {
		out[i] = l.Clone()
	}
	return out
}

// LocationsFrom rebuilds a location list from its wire form, keeping slot fill.
func LocationsFrom(values []Location) Locations {
	out := make(Locations, len(values))
	for i := range values {
		c := values[i].Clone()
		out[i] = &c
	}
	return out
}

// DefaultLocations returns the core and deed locations of a fresh game.
func DefaultLocations(numPlayers int) Locations {
	type layout struct {
		loc         Location
		startClosed bool
	}
	layouts := []layout{
		{loc: Location{Name: "Builder", Category: Core, Action: ActionBuild, SlotPrice: 2, SlotCount: 2, SlotCountFourPlayers: 3,
			Effect: "Build a plan from your neighbourhood"}},
		{loc: Location{Name: "Supplier", Category: Core, Action: ActionSupply, SlotPrice: 0, SlotCount: 2, SlotCountFourPlayers: 3,
			Effect: "Gain a plan from the plan supply, paying its cost"}},
		{loc: Location{Name: "Producer", Category: Core, Action: ActionProduce, SlotPrice: 1, SlotCount: 2, SlotCountFourPlayers: 3,
			Effect: "Gain 2 tokens"}},
		{loc: Location{Name: "Leadership", Category: Deed, Action: ActionLeadership, SlotPrice: 1, SlotCount: 1,
			Effect: "Take the starting player token and gain 1 token"}},
		{loc: Location{Name: "Wholesaler", Category: Deed, Action: ActionWholesale, SlotPrice: 1, SlotCount: 1,
			Effect: "Gain 2 tokens"}, startClosed: true},
		{loc: Location{Name: "Lotto", Category: Deed, Action: ActionLotto, SlotPrice: 3, SlotCount: 1,
			Effect: "Gain the top plan of the deck"}, startClosed: true},
	}

	out := make(Locations, 0, len(layouts))
	for _, lay := range layouts {
		l := lay.loc
		if lay.startClosed {
			l.Close()
		} else {
			l.Open(numPlayers)
		}
		out = append(out, &l)
	}
	return out
}

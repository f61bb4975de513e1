package game

// Slot is a single placement cell of a location. A slot holding no tokens is available.
type Slot struct {
	BasePrice int `json:"basePrice"`
	Tokens    int `json:"tokens"`
}

func (s Slot) Available() bool {
	return s.Tokens < 1
}

func (s *Slot) Fill(tokens int) {
	s.Tokens = tokens
}

func (s *Slot) Empty() {
	s.Tokens = 0
}

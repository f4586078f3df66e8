package team

// StatPair is a statistic value with its per-game average
type StatPair struct {
	Value   string `json:"value"`
	Average string `json:"average"`
}

// StatLine is one team statistic. Lines published with six values are split
// into overall, home and away pairs; anything else is kept as a flat tuple.
type StatLine struct {
	Overall *StatPair `json:"overall,omitempty"`
	Home    *StatPair `json:"home,omitempty"`
	Away    *StatPair `json:"away,omitempty"`
	Values  []string  `json:"values,omitempty"`
}

// Split reports whether the line carries overall/home/away pairs.
func (s StatLine) Split() bool {
	return s.Overall != nil
}

// Flatten returns the line's values in published order.
func (s StatLine) Flatten() []string {
	if !s.Split() {
		return s.Values
	}
	return []string{
		s.Overall.Value, s.Overall.Average,
		s.Home.Value, s.Home.Average,
		s.Away.Value, s.Away.Average,
	}
}

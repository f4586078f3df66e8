package team

import (
	"fmt"
	"strings"
)

// Player is one roster entry
type Player struct {
	Team        string       `json:"team"`
	Number      string       `json:"number"`
	Name        string       `json:"name"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Role        string       `json:"role"`
	Nationality string       `json:"nationality"`
	DateOfBirth string       `json:"date_of_birth"`
	Height      string       `json:"height"`
	Weight      string       `json:"weight"`
	Stats       *PlayerStats `json:"stats"`
}

// PlayerStats holds the raw cell text of one player-statistics row
type PlayerStats struct {
	Games          string `json:"games"`
	Goals          string `json:"goals"`
	PenaltyMinutes string `json:"penalty_minutes"`
	Assists        string `json:"assists"`
	Points         string `json:"points"`
	Penalties      string `json:"penalties"`
}

// NewPlayer creates a Player and derives FirstName and LastName from name.
func NewPlayer(teamTitle, number, name, role, nationality, dateOfBirth, height, weight string) *Player {
	first, last := SplitName(name)
	return &Player{
		Team:        teamTitle,
		Number:      number,
		Name:        name,
		FirstName:   first,
		LastName:    last,
		Role:        role,
		Nationality: nationality,
		DateOfBirth: dateOfBirth,
		Height:      height,
		Weight:      weight,
	}
}

// SplitName returns the first and last token of a display name.
// Middle tokens are dropped; a single token is both first and last name.
func SplitName(name string) (first, last string) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], tokens[len(tokens)-1]
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%s, %s)", p.Name, p.Number)
}

package team

import (
	"fmt"
	"time"
)

// Match is one scheduled or played game
type Match struct {
	Teams      [2]string `json:"teams"` // home, away
	Score      []int     `json:"score"`
	Datetime   time.Time `json:"datetime"`
	IsFinished bool      `json:"is_finished"`
	Winner     string    `json:"winner,omitempty"`
}

// NewMatch creates a Match and derives IsFinished and Winner relative to now.
// The winner stays empty for unfinished games, draws and scores without two values.
func NewMatch(home, away string, score []int, at, now time.Time) *Match {
	if score == nil {
		score = []int{}
	}
	m := &Match{
		Teams:      [2]string{home, away},
		Score:      score,
		Datetime:   at,
		IsFinished: at.Before(now),
	}
	if m.IsFinished {
		m.Winner = m.winner()
	}
	return m
}

func (m *Match) winner() string {
	if len(m.Score) < 2 || m.Score[0] == m.Score[1] {
		return ""
	}
	if m.Score[0] > m.Score[1] {
		return m.Teams[0]
	}
	return m.Teams[1]
}

// Involves reports whether title plays in the match.
func (m *Match) Involves(title string) bool {
	return m.Teams[0] == title || m.Teams[1] == title
}

// Opponent returns the other side of the match for title
func (m *Match) Opponent(title string) string {
	if m.Teams[0] == title {
		return m.Teams[1]
	}
	return m.Teams[0]
}

// Won reports whether title won a finished match.
func (m *Match) Won(title string) bool {
	return m.Winner != "" && m.Winner == title
}

// Lost reports whether title lost a finished match. Draws are neither won nor lost.
func (m *Match) Lost(title string) bool {
	return m.Winner != "" && m.Winner != title
}

func (m *Match) String() string {
	return fmt.Sprintf("Match(%s - %s, %s)", m.Teams[0], m.Teams[1], m.Datetime.Format("2006-01-02 15:04"))
}

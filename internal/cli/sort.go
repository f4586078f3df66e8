package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/khl-team/internal/team"
)

// PlayerSortOrder represents the available player sorting options
type PlayerSortOrder string

const (
	SortByNumber PlayerSortOrder = "number"
	SortByName   PlayerSortOrder = "name"
	SortByRole   PlayerSortOrder = "role"
)

func (o PlayerSortOrder) valid() bool {
	return o == SortByNumber || o == SortByName || o == SortByRole
}

// MatchSortOrder represents the available match sorting options
type MatchSortOrder string

const (
	SortByDate     MatchSortOrder = "date"
	SortByOpponent MatchSortOrder = "opponent"
)

func (o MatchSortOrder) valid() bool {
	return o == SortByDate || o == SortByOpponent
}

// sortPlayers sorts players in place. Number order is what the query layer
// already returns, so it is left untouched.
func sortPlayers(players []*team.Player, order PlayerSortOrder) {
	switch order {
	case SortByName:
		sort.SliceStable(players, func(i, j int) bool {
			if players[i].LastName != players[j].LastName {
				return strings.ToLower(players[i].LastName) < strings.ToLower(players[j].LastName)
			}
			return strings.ToLower(players[i].FirstName) < strings.ToLower(players[j].FirstName)
		})
	case SortByRole:
		sort.SliceStable(players, func(i, j int) bool {
			// If roles are equal, the number order is kept
			return players[i].Role < players[j].Role
		})
	}
}

// sortMatches returns a sorted copy, so the team's own schedule keeps its
// document order.
func sortMatches(matches []*team.Match, title string, order MatchSortOrder) []*team.Match {
	sorted := make([]*team.Match, len(matches))
	copy(sorted, matches)

	switch order {
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Datetime.Before(sorted[j].Datetime)
		})
	case SortByOpponent:
		sort.SliceStable(sorted, func(i, j int) bool {
			oi, oj := sorted[i].Opponent(title), sorted[j].Opponent(title)
			if oi != oj {
				return oi < oj
			}
			// If opponents are equal, sort by date
			return sorted[i].Datetime.Before(sorted[j].Datetime)
		})
	}
	return sorted
}

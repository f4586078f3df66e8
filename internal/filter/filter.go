// Package filter answers questions about an extracted team.
//
// Player queries pick one criterion, in priority order:
//   - Number (exact jersey number or synthetic key)
//   - LastName (exact)
//   - Role (exact)
//
// With no criterion every player matches. Match queries combine all of their
// criteria: upcoming only, opponent, result and a date range.
//
// Example usage:
//
//	// Matches Alpha lost against Beta
//	q := filter.MatchQuery{Opponent: "Beta", Result: filter.ResultLost}
//	matches, err := q.Apply(t)
//	if errors.Is(err, filter.ErrMatchNotFound) {
//		// nothing to show
//	}
package filter

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/khl-team/internal/team"
)

// ErrPlayerNotFound is returned when a player query has no hits.
var ErrPlayerNotFound = errors.New("player does not exist")

// ErrMatchNotFound is returned when a match query has no hits.
var ErrMatchNotFound = errors.New("match does not exist")

// Result selects matches by outcome for the queried team
type Result string

const (
	ResultAny  Result = ""
	ResultWon  Result = "won"
	ResultLost Result = "lost"
)

// PlayerQuery selects roster players
type PlayerQuery struct {
	Number   string `json:"number,omitempty"`
	LastName string `json:"last_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// IsEmpty reports whether the query matches every player.
func (q PlayerQuery) IsEmpty() bool {
	return q.Number == "" && q.LastName == "" && q.Role == ""
}

// Matches checks p against the highest-priority criterion that is set.
func (q PlayerQuery) Matches(p *team.Player) bool {
	switch {
	case q.Number != "":
		return p.Number == q.Number
	case q.LastName != "":
		return p.LastName == q.LastName
	case q.Role != "":
		return p.Role == q.Role
	default:
		return true
	}
}

// Apply returns the matching players of t ordered by number.
// An empty query returns the whole roster.
func (q PlayerQuery) Apply(t *team.Team) ([]*team.Player, error) {
	var found []*team.Player
	for _, p := range SortedPlayers(t) {
		if q.Matches(p) {
			found = append(found, p)
		}
	}
	if len(found) == 0 && !q.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, q)
	}
	return found, nil
}

func (q PlayerQuery) String() string {
	switch {
	case q.Number != "":
		return "number " + q.Number
	case q.LastName != "":
		return "last name " + q.LastName
	case q.Role != "":
		return "role " + q.Role
	default:
		return "all players"
	}
}

// MatchQuery selects matches of one team. All set criteria must hold.
type MatchQuery struct {
	UpcomingOnly bool       `json:"upcoming_only,omitempty"`
	Opponent     string     `json:"opponent,omitempty"`
	Result       Result     `json:"result,omitempty"`
	DateFrom     *time.Time `json:"date_from,omitempty"`
	DateTo       *time.Time `json:"date_to,omitempty"`
}

// IsEmpty reports whether the query matches every match.
func (q MatchQuery) IsEmpty() bool {
	return !q.UpcomingOnly &&
		q.Opponent == "" &&
		q.Result == ResultAny &&
		q.DateFrom == nil &&
		q.DateTo == nil
}

// Matches checks m from the point of view of the team titled title.
func (q MatchQuery) Matches(title string, m *team.Match) bool {
	if q.UpcomingOnly && m.IsFinished {
		return false
	}
	if q.Opponent != "" && !m.Involves(q.Opponent) {
		return false
	}
	if q.DateFrom != nil && m.Datetime.Before(*q.DateFrom) {
		return false
	}
	if q.DateTo != nil && m.Datetime.After(*q.DateTo) {
		return false
	}

	switch q.Result {
	case ResultWon:
		return m.Won(title)
	case ResultLost:
		return m.Lost(title)
	}
	return true
}

// Apply returns the matching matches of t in schedule order.
// No hits is an error even for an empty query.
func (q MatchQuery) Apply(t *team.Team) ([]*team.Match, error) {
	var found []*team.Match
	for _, m := range t.Matches {
		if q.Matches(t.Title, m) {
			found = append(found, m)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, q)
	}
	return found, nil
}

// String returns a human-readable description of the active criteria.
func (q MatchQuery) String() string {
	if q.IsEmpty() {
		return "all matches"
	}

	var parts []string
	if q.UpcomingOnly {
		parts = append(parts, "upcoming")
	}
	if q.Opponent != "" {
		parts = append(parts, "against "+q.Opponent)
	}
	if q.Result != ResultAny {
		parts = append(parts, string(q.Result))
	}
	if q.DateFrom != nil {
		parts = append(parts, "from "+q.DateFrom.Format(dateLayout))
	}
	if q.DateTo != nil {
		parts = append(parts, "to "+q.DateTo.Format(dateLayout))
	}
	return strings.Join(parts, ", ")
}

// SortedPlayers returns the roster ordered by jersey number. Players without a
// printed number follow, in the order their synthetic keys were assigned.
func SortedPlayers(t *team.Team) []*team.Player {
	players := make([]*team.Player, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		return playerLess(players[i].Number, players[j].Number)
	})
	return players
}

const syntheticPrefix = "None"

func playerLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai < bi
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	}

	as, aSyn := syntheticIndex(a)
	bs, bSyn := syntheticIndex(b)
	if aSyn && bSyn {
		return as < bs
	}
	return a < b
}

func syntheticIndex(key string) (int, bool) {
	if !strings.HasPrefix(key, syntheticPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(key, syntheticPrefix))
	return n, err == nil
}

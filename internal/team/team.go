package team

import "fmt"

// Document kinds every team exposes.
const (
	KindTeam        = "team"
	KindMatches     = "matches"
	KindRoster      = "roster"
	KindPlayerStats = "player_stats"
	KindTeamStats   = "team_stats"
)

// URLs holds the locator of every document describing one team
type URLs struct {
	Team        string `json:"team"`
	Matches     string `json:"matches"`
	Roster      string `json:"roster"`
	PlayerStats string `json:"player_stats"`
	TeamStats   string `json:"team_stats"`
}

// ByKind returns the locators as a document-kind keyed map.
func (u URLs) ByKind() map[string]string {
	return map[string]string{
		KindTeam:        u.Team,
		KindMatches:     u.Matches,
		KindRoster:      u.Roster,
		KindPlayerStats: u.PlayerStats,
		KindTeamStats:   u.TeamStats,
	}
}

// Entry is one team as listed on the catalog page
type Entry struct {
	Title    string `json:"team"`
	Location string `json:"location"`
	URLs     URLs   `json:"urls"`
}

// Team is the normalized record of one team
type Team struct {
	Title     string              `json:"team"`
	Location  string              `json:"location"`
	URLs      URLs                `json:"urls"`
	HeadCoach string              `json:"head_coach"`
	Arena     string              `json:"arena"`
	President string              `json:"president"`
	Sponsor   *string             `json:"sponsor"`
	Site      *string             `json:"site"`
	Matches   []*Match            `json:"matches"`
	Players   map[string]*Player  `json:"players"`
	Stats     map[string]StatLine `json:"stats"`
	Dropped   []DroppedRecord     `json:"dropped,omitempty"`
}

// New creates an empty team record from a catalog entry.
func New(entry Entry) *Team {
	return &Team{
		Title:    entry.Title,
		Location: entry.Location,
		URLs:     entry.URLs,
		Matches:  make([]*Match, 0),
		Players:  make(map[string]*Player),
		Stats:    make(map[string]StatLine),
	}
}

func (t *Team) String() string {
	return fmt.Sprintf("Team(%s, %s)", t.Title, t.Location)
}

// DroppedRecord is data the extraction engine saw but could not place
type DroppedRecord struct {
	Source string   `json:"source"`
	Reason string   `json:"reason"`
	Cells  []string `json:"cells"`
}

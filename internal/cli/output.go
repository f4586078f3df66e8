package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/khl-team/internal/filter"
	"github.com/pfrederiksen/khl-team/internal/team"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

const matchTimeLayout = "02.01.2006 15:04"

// TeamsResult is the output of the teams command
type TeamsResult struct {
	FetchedAt time.Time    `json:"fetched_at"`
	Teams     []team.Entry `json:"teams"`
	Count     int          `json:"count"`
}

// TeamResult is the output of the team command
type TeamResult struct {
	Teams []*team.Team `json:"teams"`
}

// PlayersResult is the output of the players command
type PlayersResult struct {
	Team    string         `json:"team"`
	Query   string         `json:"query"`
	Players []*team.Player `json:"players"`
	Count   int            `json:"count"`
}

// MatchesResult is the output of the matches command
type MatchesResult struct {
	Team    string        `json:"team"`
	Query   string        `json:"query"`
	Matches []*team.Match `json:"matches"`
	Count   int           `json:"count"`
}

// StatsResult is the output of the stats command
type StatsResult struct {
	Team  string                   `json:"team"`
	Stats map[string]team.StatLine `json:"stats"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result interface{}, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result interface{}, verbose bool) error {
	switch r := result.(type) {
	case *TeamsResult:
		writeTeamsText(w, r, verbose)
	case *TeamResult:
		for _, t := range r.Teams {
			writeTeamText(w, t, verbose)
		}
	case *PlayersResult:
		writePlayersText(w, r, verbose)
	case *MatchesResult:
		writeMatchesText(w, r)
	case *StatsResult:
		writeStatsText(w, r)
	default:
		return fmt.Errorf("no text output for %T", result)
	}
	return nil
}

func writeTeamsText(w io.Writer, r *TeamsResult, verbose bool) {
	if r.Count == 0 {
		fmt.Fprintln(w, "No teams found.")
		return
	}
	for _, e := range r.Teams {
		fmt.Fprintf(w, "%s (%s)\n", e.Title, e.Location)
		if verbose {
			fmt.Fprintf(w, "     URL: %s\n", e.URLs.Team)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d teams\n", r.Count)
}

func writeTeamText(w io.Writer, t *team.Team, verbose bool) {
	fmt.Fprintf(w, "%s (%s)\n", t.Title, t.Location)
	fmt.Fprintf(w, "  Head coach: %s\n", t.HeadCoach)
	fmt.Fprintf(w, "  Arena: %s\n", t.Arena)
	fmt.Fprintf(w, "  President: %s\n", t.President)
	if t.Sponsor != nil {
		fmt.Fprintf(w, "  Sponsor: %s\n", *t.Sponsor)
	}
	if t.Site != nil {
		fmt.Fprintf(w, "  Site: %s\n", *t.Site)
	}
	fmt.Fprintf(w, "  Matches: %d, players: %d, statistics: %d\n", len(t.Matches), len(t.Players), len(t.Stats))

	if len(t.Dropped) > 0 {
		fmt.Fprintf(w, "  Dropped records: %d\n", len(t.Dropped))
		if verbose {
			for _, d := range t.Dropped {
				fmt.Fprintf(w, "       %s: %s %v\n", d.Source, d.Reason, d.Cells)
			}
		}
	}
	fmt.Fprintln(w)
}

func writePlayersText(w io.Writer, r *PlayersResult, verbose bool) {
	if r.Count == 0 {
		fmt.Fprintln(w, "No players found.")
		return
	}
	fmt.Fprintf(w, "%s: %s\n\n", r.Team, r.Query)
	for _, p := range r.Players {
		fmt.Fprintf(w, "%6s  %-30s %s\n", p.Number, p.Name, p.Role)
		if verbose {
			fmt.Fprintf(w, "        Born: %s, %s, %s cm, %s kg\n", p.DateOfBirth, p.Nationality, p.Height, p.Weight)
			if p.Stats != nil {
				fmt.Fprintf(w, "        Games: %s, goals: %s, assists: %s, points: %s\n",
					p.Stats.Games, p.Stats.Goals, p.Stats.Assists, p.Stats.Points)
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d players\n", r.Count)
}

func writeMatchesText(w io.Writer, r *MatchesResult) {
	if r.Count == 0 {
		fmt.Fprintln(w, "No matches found.")
		return
	}
	fmt.Fprintf(w, "%s: %s\n\n", r.Team, r.Query)
	for _, m := range r.Matches {
		fmt.Fprintf(w, "%s  %s - %s  %s\n",
			m.Datetime.Format(matchTimeLayout), m.Teams[0], m.Teams[1], matchOutcome(r.Team, m))
	}
	fmt.Fprintf(w, "\nTotal: %d matches\n", r.Count)
}

// matchOutcome renders the score and result from the point of view of title.
func matchOutcome(title string, m *team.Match) string {
	if !m.IsFinished {
		return "upcoming"
	}
	score := make([]string, len(m.Score))
	for i, n := range m.Score {
		score[i] = fmt.Sprint(n)
	}

	outcome := "draw"
	switch {
	case m.Won(title):
		outcome = string(filter.ResultWon)
	case m.Lost(title):
		outcome = string(filter.ResultLost)
	case len(m.Score) < 2:
		outcome = "no score"
	}
	if len(score) == 0 {
		return outcome
	}
	return strings.Join(score, ":") + " " + outcome
}

func writeStatsText(w io.Writer, r *StatsResult) {
	if len(r.Stats) == 0 {
		fmt.Fprintln(w, "No statistics found.")
		return
	}

	names := make([]string, 0, len(r.Stats))
	for name := range r.Stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "%s\n\n", r.Team)
	for _, name := range names {
		line := r.Stats[name]
		if line.Split() {
			fmt.Fprintf(w, "%s: %s (%s), home %s (%s), away %s (%s)\n", name,
				line.Overall.Value, line.Overall.Average,
				line.Home.Value, line.Home.Average,
				line.Away.Value, line.Away.Average)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(line.Values, " "))
	}
}

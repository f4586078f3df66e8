package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/khl-team/internal/filter"
	"github.com/pfrederiksen/khl-team/internal/team"
)

const catalogPath = "/hockey/_superleague/1770/teams.html"

func td(class, text string) string {
	return fmt.Sprintf(`<td class="%s">%s</td>`, class, text)
}

func row(cells ...string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

// newSiteServer serves a two-team catalog where only Alpha has data.
func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()

	pages := map[string]string{
		catalogPath: `<a class="sport__tiles__i" href="/hockey/_superleague/1770/team/1/result.html">Alpha
				Moscow</a>
			<a class="sport__tiles__i" href="/hockey/_superleague/1770/team/2/result.html">Beta
				Kazan</a>`,
		"/hockey/_superleague/1770/team/1/result.html": `<table><tr>` +
			td("sport__table__tstat__td ", "01.01.2020") + td("sport__table__tstat__td ", "18:00") +
			td("sport__table__tstat__td _big", "Alpha — Beta") + td("sport__table__tstat__td _count _big", "3:1") +
			`</tr><tr>` +
			td("sport__table__tstat__td ", "03.01.2020") + td("sport__table__tstat__td ", "18:00") +
			td("sport__table__tstat__td _big", "Beta — Alpha") + td("sport__table__tstat__td _count _big", "4:0") +
			`</tr><tr>` +
			td("sport__table__tstat__td ", "01.01.2099") + td("sport__table__tstat__td ", "19:30") +
			td("sport__table__tstat__td _big", "Alpha — Beta") + td("sport__table__tstat__td _count _big", "") +
			`</tr></table>` +
			`<div class="sport__info__data__i">Coach: <a>Ivan Ivanov</a></div>` +
			`<div class="sport__info__data__i"><a>Alpha Arena</a></div>` +
			`<div class="sport__info__data__i">President: Petr Petrov</div>` +
			`<div class="sport__info__data__i"><a>alpha.example</a></div>`,
		"/hockey/_superleague/1770/team/1/players.html": `<table>` +
			row("10", "Ivan Petrov", "Forward", "RUS", "01.01.1990", "180", "85") +
			row("7", "Oleg Sidorov", "Defender", "RUS", "02.02.1992", "185", "90") +
			`</table>`,
		"/hockey/_superleague/1770/team/1/pstat.html": `<table>` +
			row("10", "Ivan Petrov", "20", "5", "12", "7", "12", "3") +
			`</table>`,
		"/hockey/_superleague/1770/team/1/tstat.html": `<table>` +
			row("Goals", "120", "2.1", "70", "2.3", "50", "1.9") +
			row("Shots", "1", "2", "3") +
			`</table>`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := pages[r.URL.Path]
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><body>"+body+"</body></html>")
	}))
	t.Cleanup(srv.Close)
	return srv
}

// runCLI executes the root command against srv and returns stdout.
func runCLI(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{
		"--base-url", srv.URL + "/",
		"--timezone", "UTC",
		"--requests-per-minute", "0",
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestTeamsCommand(t *testing.T) {
	srv := newSiteServer(t)

	out, err := runCLI(t, srv, "teams")
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	for _, want := range []string{"Alpha (Moscow)", "Beta (Kazan)", "Total: 2 teams"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTeamCommand_JSON(t *testing.T) {
	srv := newSiteServer(t)

	out, err := runCLI(t, srv, "--format", "json", "team", "Alpha")
	if err != nil {
		t.Fatalf("team: %v", err)
	}

	var result TeamResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}
	if len(result.Teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(result.Teams))
	}
	alpha := result.Teams[0]
	if alpha.HeadCoach != "Ivan Ivanov" || alpha.Sponsor != nil {
		t.Errorf("meta = %q / %v", alpha.HeadCoach, alpha.Sponsor)
	}
	if alpha.Players["10"] == nil || alpha.Players["10"].Stats == nil {
		t.Errorf("player 10 = %+v", alpha.Players["10"])
	}
	if len(alpha.Matches) != 3 || alpha.Matches[0].Winner != "Alpha" {
		t.Errorf("matches = %v", alpha.Matches)
	}
}

func TestPlayersCommand(t *testing.T) {
	srv := newSiteServer(t)

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr error
	}{
		{
			name: "all players",
			args: []string{"players", "Alpha"},
			want: []string{"Ivan Petrov", "Oleg Sidorov", "Total: 2 players"},
		},
		{
			name: "by number",
			args: []string{"players", "Alpha", "--number", "7"},
			want: []string{"Oleg Sidorov", "Total: 1 players"},
		},
		{
			name:    "unknown last name",
			args:    []string{"players", "Alpha", "--last-name", "Nobody"},
			wantErr: filter.ErrPlayerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, srv, tt.args...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if ExitCode(err) != ExitNotFound {
					t.Errorf("ExitCode() = %d, want %d", ExitCode(err), ExitNotFound)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestMatchesCommand(t *testing.T) {
	srv := newSiteServer(t)

	out, err := runCLI(t, srv, "matches", "Alpha", "--result", "lost")
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if !strings.Contains(out, "03.01.2020 18:00  Beta - Alpha  4:0 lost") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 matches") {
		t.Errorf("unexpected total:\n%s", out)
	}

	out, err = runCLI(t, srv, "matches", "Alpha", "--upcoming")
	if err != nil {
		t.Fatalf("matches --upcoming: %v", err)
	}
	if !strings.Contains(out, "01.01.2099 19:30  Alpha - Beta  upcoming") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestMatchesCommand_BadFlags(t *testing.T) {
	srv := newSiteServer(t)

	for _, args := range [][]string{
		{"matches", "Alpha", "--result", "draw"},
		{"matches", "Alpha", "--dates", "March"},
		{"matches", "Alpha", "--sort", "score"},
		{"--format", "xml", "matches", "Alpha"},
	} {
		if _, err := runCLI(t, srv, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestStatsCommand(t *testing.T) {
	srv := newSiteServer(t)

	out, err := runCLI(t, srv, "stats", "Alpha")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{
		"Goals: 120 (2.1), home 70 (2.3), away 50 (1.9)",
		"Shots: 1 2 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownTeam(t *testing.T) {
	srv := newSiteServer(t)

	_, err := runCLI(t, srv, "stats", "Gamma")
	if err == nil || !strings.Contains(err.Error(), "Gamma") {
		t.Fatalf("error = %v, want unknown team Gamma", err)
	}
	if ExitCode(err) != ExitNotFound {
		t.Errorf("ExitCode() = %d, want %d", ExitCode(err), ExitNotFound)
	}
}

func TestCalendarCommand(t *testing.T) {
	srv := newSiteServer(t)
	path := filepath.Join(t.TempDir(), "alpha.ics")

	if _, err := runCLI(t, srv, "calendar", "Alpha", "--upcoming", "--output", path, "--remind", "30m"); err != nil {
		t.Fatalf("calendar: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading calendar: %v", err)
	}
	ics := string(data)
	for _, want := range []string{
		"SUMMARY:Hockey: Alpha - Beta",
		"DTSTART:20990101T193000Z",
		"DTEND:20990101T223000Z",
		"TRIGGER:-PT30M",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("calendar missing %q", want)
		}
	}
	if strings.Count(ics, "BEGIN:VEVENT") != 1 {
		t.Errorf("want one upcoming event:\n%s", ics)
	}
}

func TestMetricsFile(t *testing.T) {
	srv := newSiteServer(t)
	path := filepath.Join(t.TempDir(), "khl.prom")

	if _, err := runCLI(t, srv, "--metrics-file", path, "teams"); err != nil {
		t.Fatalf("teams: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(data), `khl_team_documents_fetched_total{outcome="ok"} 1`) {
		t.Errorf("unexpected metrics:\n%s", data)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{errors.New("boom"), ExitError},
		{fmt.Errorf("wrapped: %w", filter.ErrMatchNotFound), ExitNotFound},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestSortMatches(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2025, 12, d, 19, 0, 0, 0, time.UTC) }
	matches := []*team.Match{
		team.NewMatch("Alpha", "Gamma", nil, day(3), now),
		team.NewMatch("Beta", "Alpha", nil, day(5), now),
		team.NewMatch("Alpha", "Beta", nil, day(1), now),
	}

	byDate := sortMatches(matches, "Alpha", SortByDate)
	if byDate[0] != matches[2] || byDate[1] != matches[0] || byDate[2] != matches[1] {
		t.Errorf("date order = %v", byDate)
	}
	if matches[0].Teams[1] != "Gamma" {
		t.Error("sortMatches must not reorder its input")
	}

	byOpponent := sortMatches(matches, "Alpha", SortByOpponent)
	if byOpponent[0] != matches[2] || byOpponent[1] != matches[1] || byOpponent[2] != matches[0] {
		t.Errorf("opponent order = %v", byOpponent)
	}
}

func TestSortPlayers(t *testing.T) {
	players := []*team.Player{
		team.NewPlayer("Alpha", "3", "Oleg Sidorov", "Defender", "", "", "", ""),
		team.NewPlayer("Alpha", "10", "Ivan Petrov", "Forward", "", "", "", ""),
		team.NewPlayer("Alpha", "12", "Anton Petrov", "Defender", "", "", "", ""),
	}

	sortPlayers(players, SortByName)
	if players[0].Name != "Anton Petrov" || players[2].Name != "Oleg Sidorov" {
		t.Errorf("name order = %v", players)
	}

	sortPlayers(players, SortByRole)
	if players[0].Role != "Defender" || players[2].Role != "Forward" {
		t.Errorf("role order = %v", players)
	}
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	if err := WriteOutput(io.Discard, &StatsResult{}, OutputFormat("xml"), false); err == nil {
		t.Error("expected error for unknown format")
	}
	if err := WriteOutput(io.Discard, struct{}{}, FormatText, false); err == nil {
		t.Error("expected error for unsupported result type")
	}
}

package extract

import (
	"time"

	"github.com/pfrederiksen/khl-team/internal/team"
)

// Extractor names used as DroppedRecord sources and metric labels.
const (
	sourceMatches     = "matches"
	sourceRoster      = "roster"
	sourcePlayerStats = "player_stats"
	sourceTeamStats   = "team_stats"
)

// working is the scratch record of the team under extraction. Every extractor
// receives it explicitly; nothing is shared between teams.
type working struct {
	team     *team.Team
	roster   []string // player keys in roster document order
	now      time.Time
	location *time.Location
}

func newWorking(entry team.Entry, now time.Time, loc *time.Location) *working {
	return &working{
		team:     team.New(entry),
		now:      now,
		location: loc,
	}
}

func (w *working) drop(source, reason string, cells []string) {
	w.team.Dropped = append(w.team.Dropped, team.DroppedRecord{
		Source: source,
		Reason: reason,
		Cells:  cells,
	})
}

// dropTail records the incomplete trailing record left in chunker, if any.
func (w *working) dropTail(source string, chunker *Chunker) {
	if tail := chunker.Flush(); len(tail) > 0 {
		w.drop(source, "incomplete trailing record", tail)
	}
}

func (w *working) droppedBy(source string) int {
	n := 0
	for _, d := range w.team.Dropped {
		if d.Source == source {
			n++
		}
	}
	return n
}

package extract

import (
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/khl-team/internal/team"
)

// Only the date, time, teams and score columns carry these exact class values.
const matchCellSelector = `td[class="sport__table__tstat__td "], ` +
	`td[class="sport__table__tstat__td _big"], ` +
	`td[class="sport__table__tstat__td _count _big"]`

const matchDatetimeLayout = "2.1.2006:15:04"

var matchKeys = []string{"date", "time", "teams", "score"}

// extractMatches fills the schedule in document order.
func extractMatches(doc *goquery.Document, w *working) error {
	chunker := NewChunker(matchKeys)
	var err error

	doc.Find(matchCellSelector).EachWithBreak(func(_ int, td *goquery.Selection) bool {
		rec, ok := chunker.Push(normalizeCell(td.Text()))
		if !ok {
			return true
		}
		m, buildErr := buildMatch(rec, w.now, w.location)
		if buildErr != nil {
			err = buildErr
			return false
		}
		w.team.Matches = append(w.team.Matches, m)
		return true
	})

	if err != nil {
		return fmt.Errorf("matches: %w", err)
	}
	w.dropTail(sourceMatches, chunker)
	return nil
}

func buildMatch(rec Record, now time.Time, loc *time.Location) (*team.Match, error) {
	home, guest, err := teamPair(rec.Field("teams"))
	if err != nil {
		return nil, err
	}

	stamp := rec.Field("date") + ":" + rec.Field("time")
	at, err := time.ParseInLocation(matchDatetimeLayout, stamp, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: match datetime %q", ErrShapeMismatch, stamp)
	}

	return team.NewMatch(home, guest, parseScore(rec.Field("score")), at, now), nil
}

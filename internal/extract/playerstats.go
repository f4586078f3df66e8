package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/khl-team/internal/team"
)

var playerStatsKeys = []string{
	"number", "name", "games", "goals", "penalty_minutes", "assists", "points", "penalties",
}

// extractPlayerStats attaches statistics rows to roster players and returns
// how many rows were joined. Rows that resolve to no player are dropped.
func extractPlayerStats(doc *goquery.Document, w *working) int {
	chunker := NewChunker(playerStatsKeys)
	resolver := newIdentityResolver(w.team.Players, w.roster)
	joined := 0

	doc.Find("td").Each(func(_ int, td *goquery.Selection) {
		rec, ok := chunker.Push(normalizeCell(td.Text()))
		if !ok {
			return
		}

		player, reason := resolver.resolve(rec)
		if player == nil {
			w.drop(sourcePlayerStats, reason, rec.Values)
			return
		}
		player.Stats = &team.PlayerStats{
			Games:          rec.Field("games"),
			Goals:          rec.Field("goals"),
			PenaltyMinutes: rec.Field("penalty_minutes"),
			Assists:        rec.Field("assists"),
			Points:         rec.Field("points"),
			Penalties:      rec.Field("penalties"),
		}
		joined++
	})

	w.dropTail(sourcePlayerStats, chunker)
	return joined
}

// identityResolver finds the roster player a statistics row belongs to.
type identityResolver struct {
	players map[string]*team.Player
	order   []string
}

func newIdentityResolver(players map[string]*team.Player, order []string) *identityResolver {
	return &identityResolver{players: players, order: order}
}

// resolve joins by jersey number when the row has one, otherwise by the
// (first name, last name) pair of the first non-empty cell. The first roster
// player in document order wins a name tie. A nil player comes with the reason.
func (r *identityResolver) resolve(rec Record) (*team.Player, string) {
	if number := rec.Field("number"); number != "" {
		if p, ok := r.players[number]; ok {
			return p, ""
		}
		return nil, "unknown number " + number
	}

	name := firstNonEmpty(rec.Values)
	first, last := team.SplitName(name)
	if first == "" {
		return nil, "no number and no name"
	}
	for _, key := range r.order {
		p := r.players[key]
		if p != nil && p.FirstName == first && p.LastName == last {
			return p, ""
		}
	}
	return nil, "no roster player named " + name
}

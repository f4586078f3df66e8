package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/khl-team/internal/team"
)

var rosterKeys = []string{"number", "name", "role", "nationality", "date_of_birth", "height", "weight"}

// extractRoster fills the player map. Players printed without a number get
// synthetic "None<n>" keys; a repeated number replaces the earlier player.
func extractRoster(doc *goquery.Document, w *working) {
	chunker := NewChunker(rosterKeys, SkipEmpty(), SyntheticIDs())

	doc.Find("td").Each(func(_ int, td *goquery.Selection) {
		rec, ok := chunker.Push(normalizeCell(td.Text()))
		if !ok {
			return
		}

		p := team.NewPlayer(
			w.team.Title,
			rec.Field("number"),
			rec.Field("name"),
			rec.Field("role"),
			rec.Field("nationality"),
			rec.Field("date_of_birth"),
			rec.Field("height"),
			rec.Field("weight"),
		)

		if prev, exists := w.team.Players[p.Number]; exists {
			w.drop(sourceRoster, "duplicate number "+p.Number, []string{
				prev.Number, prev.Name, prev.Role, prev.Nationality,
				prev.DateOfBirth, prev.Height, prev.Weight,
			})
		} else {
			w.roster = append(w.roster, p.Number)
		}
		w.team.Players[p.Number] = p
	})

	w.dropTail(sourceRoster, chunker)
}

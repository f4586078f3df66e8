package extract

import "github.com/PuerkitoBio/goquery"

const metaBlockSelector = "div.sport__info__data__i"

// Meta block positions on the results page.
const (
	metaCoach = iota
	metaArena
	metaPresident
	metaSponsor
	metaSite
)

// extractMeta fills the front-office fields. Pages without a sponsor block
// publish four blocks; an empty sponsor is inserted so the site stays last.
func extractMeta(doc *goquery.Document, w *working) {
	blocks := make([]string, 0, 5)
	doc.Find(metaBlockSelector).Each(func(_ int, div *goquery.Selection) {
		if link := div.Find("a").First(); link.Length() > 0 {
			blocks = append(blocks, normalizeCell(link.Text()))
			return
		}
		blocks = append(blocks, normalizeCell(div.Text()))
	})

	if len(blocks) == 4 {
		blocks = append(blocks[:metaSponsor], append([]string{""}, blocks[metaSponsor:]...)...)
	}

	for i, text := range blocks {
		switch i {
		case metaCoach:
			w.team.HeadCoach = coachName(text)
		case metaArena:
			w.team.Arena = arenaName(text)
		case metaPresident:
			w.team.President = presidentName(text)
		case metaSponsor:
			w.team.Sponsor = sponsorName(text)
		case metaSite:
			w.team.Site = siteURL(text)
		}
	}
}

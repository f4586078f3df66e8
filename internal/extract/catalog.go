package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/khl-team/internal/team"
)

const catalogTileSelector = "a.sport__tiles__i"

// parseCatalog reads every team tile of the catalog page.
func parseCatalog(doc *goquery.Document, loc Locators) ([]team.Entry, error) {
	entries := make([]team.Entry, 0)
	var err error

	doc.Find(catalogTileSelector).EachWithBreak(func(i int, tile *goquery.Selection) bool {
		title, location, matchErr := teamTitle(tile.Text())
		if matchErr != nil {
			err = fmt.Errorf("catalog tile %d: %w", i, matchErr)
			return false
		}

		href, _ := tile.Attr("href")
		urls, urlErr := loc.TeamURLs(href)
		if urlErr != nil {
			err = fmt.Errorf("catalog tile %q: %w", title, urlErr)
			return false
		}

		entries = append(entries, team.Entry{
			Title:    title,
			Location: location,
			URLs:     urls,
		})
		return true
	})

	if err != nil {
		return nil, err
	}
	return entries, nil
}

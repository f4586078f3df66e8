package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/khl-team/internal/team"
)

// Team statistics are published as (value, average) for overall, home and away.
const splitStatValues = 6

// extractTeamStats walks the statistics cells as a two-state machine: a cell
// starting with a word is a stat name, anything else is one of its values.
func extractTeamStats(doc *goquery.Document, w *working) {
	var (
		key    string
		values []string
	)
	finalize := func() {
		if key != "" {
			w.team.Stats[key] = groupStatValues(values)
		}
		values = nil
	}

	doc.Find("td").Each(func(_ int, td *goquery.Selection) {
		cell := normalizeCell(td.Text())
		if cell == "" {
			return
		}
		if isStatKey(cell) {
			finalize()
			key = cell
			return
		}
		if key == "" {
			w.drop(sourceTeamStats, "value before first stat name", []string{cell})
			return
		}
		values = append(values, cell)
	})
	finalize()
}

func isStatKey(cell string) bool {
	tokens := strings.Fields(cell)
	return len(tokens) > 0 && isAlphabetic(tokens[0])
}

// groupStatValues keeps at most six values; exactly six become three pairs.
func groupStatValues(values []string) team.StatLine {
	if len(values) > splitStatValues {
		values = values[:splitStatValues]
	}
	if len(values) != splitStatValues {
		return team.StatLine{Values: append([]string{}, values...)}
	}
	return team.StatLine{
		Overall: &team.StatPair{Value: values[0], Average: values[1]},
		Home:    &team.StatPair{Value: values[2], Average: values[3]},
		Away:    &team.StatPair{Value: values[4], Average: values[5]},
	}
}

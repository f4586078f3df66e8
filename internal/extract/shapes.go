package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// word is a run of Unicode letters, digits or underscores.
const word = `[\p{L}\p{N}_]+`

var (
	// Title is two words with optional single spaces plus one more word, so
	// "Ак Барс\n   Казань" yields "Ак Барс" and leaves the city behind.
	titlePattern = regexp.MustCompile(`(?:` + word + `\s?){2}` + word)
	homePattern  = regexp.MustCompile(`^` + word + `(?:\s` + word + `)*`)
	guestPattern = regexp.MustCompile(word + `(?:\s` + word + `)*$`)
	scorePattern = regexp.MustCompile(`\d+`)
	coachPattern = regexp.MustCompile(`^(?:` + word + `\s*)+`)
	arenaPattern = regexp.MustCompile(`^` + word + `(?:-?\s?` + word + `)+`)
)

// normalizeCell collapses whitespace runs and composes the text to NFC.
func normalizeCell(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// teamTitle splits catalog tile text into the short team title and its location.
func teamTitle(text string) (title, location string, err error) {
	text = norm.NFC.String(strings.ReplaceAll(text, "\u00a0", " "))
	title = titlePattern.FindString(text)
	if title == "" {
		return "", "", fmt.Errorf("%w: team title in %q", ErrShapeMismatch, normalizeCell(text))
	}
	location = normalizeCell(strings.ReplaceAll(text, title, ""))
	return title, location, nil
}

// teamPair splits "Home — Guest" text into both titles.
func teamPair(text string) (home, guest string, err error) {
	home = homePattern.FindString(text)
	guest = guestPattern.FindString(text)
	if home == "" || guest == "" {
		return "", "", fmt.Errorf("%w: team pair %q", ErrShapeMismatch, text)
	}
	return home, guest, nil
}

// parseScore returns every integer in text, in order. Unplayed matches have none.
func parseScore(text string) []int {
	found := scorePattern.FindAllString(text, -1)
	score := make([]int, 0, len(found))
	for _, s := range found {
		n, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		score = append(score, n)
	}
	return score
}

func coachName(text string) string {
	return strings.TrimSpace(coachPattern.FindString(text))
}

func arenaName(text string) string {
	return strings.TrimSpace(arenaPattern.FindString(text))
}

// valueAfterColon returns the trimmed second colon-separated segment of text.
func valueAfterColon(text string) (string, bool) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func presidentName(text string) string {
	name, _ := valueAfterColon(text)
	return name
}

func sponsorName(text string) *string {
	name, ok := valueAfterColon(text)
	if !ok {
		return nil
	}
	return &name
}

// siteURL prefixes an http scheme to a bare host, as in "www.hawk.ru".
func siteURL(text string) *string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.Contains(text, "://") {
		return &text
	}
	site := strings.ReplaceAll("http:///"+strings.TrimLeft(text, "/"), "///", "//")
	return &site
}

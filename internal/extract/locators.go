package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pfrederiksen/khl-team/internal/config"
	"github.com/pfrederiksen/khl-team/internal/team"
)

// Locators is the base address plus the relative paths of every document kind
type Locators struct {
	Base        string
	Catalog     string
	Results     string
	Roster      string
	PlayerStats string
	TeamStats   string
}

// DefaultLocators returns the championat.com KHL locators.
func DefaultLocators() Locators {
	return Locators{
		Base:        config.DefaultBaseURL,
		Catalog:     config.DefaultCatalogPath,
		Results:     config.DefaultResultsSuffix,
		Roster:      config.DefaultRosterSuffix,
		PlayerStats: config.DefaultPlayerStatsSuffix,
		TeamStats:   config.DefaultTeamStatsSuffix,
	}
}

// LocatorsFromConfig builds Locators from loaded settings.
func LocatorsFromConfig(cfg *config.Config) Locators {
	return Locators{
		Base:        cfg.BaseURL,
		Catalog:     cfg.CatalogPath,
		Results:     cfg.ResultsSuffix,
		Roster:      cfg.RosterSuffix,
		PlayerStats: cfg.PlayerStatsSuffix,
		TeamStats:   cfg.TeamStatsSuffix,
	}
}

// CatalogURL is the absolute address of the team list page.
func (l Locators) CatalogURL() (string, error) {
	base, err := url.Parse(l.Base)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	ref, err := url.Parse(l.Catalog)
	if err != nil {
		return "", fmt.Errorf("parsing catalog path: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

// TeamURLs derives every per-team locator from a catalog tile link, which
// points at the team's results page.
func (l Locators) TeamURLs(href string) (team.URLs, error) {
	base, err := url.Parse(l.Base)
	if err != nil {
		return team.URLs{}, fmt.Errorf("parsing base url: %w", err)
	}
	ref, err := url.Parse(strings.ReplaceAll(strings.TrimSpace(href), l.Results, ""))
	if err != nil {
		return team.URLs{}, fmt.Errorf("parsing team link %q: %w", href, err)
	}
	root := base.ResolveReference(ref)

	resolve := func(suffix string) (string, error) {
		s, err := url.Parse(suffix)
		if err != nil {
			return "", fmt.Errorf("parsing suffix %q: %w", suffix, err)
		}
		return root.ResolveReference(s).String(), nil
	}

	var urls team.URLs
	urls.Team = root.String()
	if urls.Matches, err = resolve(l.Results); err != nil {
		return team.URLs{}, err
	}
	if urls.Roster, err = resolve(l.Roster); err != nil {
		return team.URLs{}, err
	}
	if urls.PlayerStats, err = resolve(l.PlayerStats); err != nil {
		return team.URLs{}, err
	}
	if urls.TeamStats, err = resolve(l.TeamStats); err != nil {
		return team.URLs{}, err
	}
	return urls, nil
}

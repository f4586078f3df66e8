package extract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/khl-team/internal/logger"
	"github.com/pfrederiksen/khl-team/internal/metrics"
	"github.com/pfrederiksen/khl-team/internal/team"
)

// Fetcher returns the parsed document behind a locator.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) (*goquery.Document, error)
}

// Extractor resolves team titles against the catalog and extracts full team records
type Extractor struct {
	fetcher  Fetcher
	locators Locators
	location *time.Location
	now      func() time.Time
	log      *logger.Logger
	metrics  *metrics.Recorder
	catalog  []team.Entry
}

// Option configures an Extractor
type Option func(*Extractor)

// WithLocators overrides the document locators.
func WithLocators(l Locators) Option {
	return func(x *Extractor) { x.locators = l }
}

// WithLocation sets the time zone match times are published in.
func WithLocation(loc *time.Location) Option {
	return func(x *Extractor) { x.location = loc }
}

// WithClock sets the source of the extraction time used to decide finished matches.
func WithClock(now func() time.Time) Option {
	return func(x *Extractor) { x.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(x *Extractor) { x.log = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(x *Extractor) { x.metrics = m }
}

// New creates an Extractor and loads the team catalog. The catalog is read
// exactly once, whatever teams are requested later.
func New(ctx context.Context, f Fetcher, opts ...Option) (*Extractor, error) {
	x := &Extractor{
		fetcher:  f,
		locators: DefaultLocators(),
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(x)
	}

	catalogURL, err := x.locators.CatalogURL()
	if err != nil {
		return nil, err
	}
	doc, err := x.fetcher.Fetch(ctx, catalogURL)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	x.catalog, err = parseCatalog(doc, x.locators)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	x.log.Info("Loaded team catalog", logger.Fields{
		"url":   catalogURL,
		"teams": len(x.catalog),
	})
	return x, nil
}

// Catalog returns every known team in page order.
func (x *Extractor) Catalog() []team.Entry {
	out := make([]team.Entry, len(x.catalog))
	copy(out, x.catalog)
	return out
}

// Lookup finds a catalog entry by exact title.
func (x *Extractor) Lookup(title string) (team.Entry, error) {
	for _, entry := range x.catalog {
		if entry.Title == title {
			return entry, nil
		}
	}
	return team.Entry{}, &UnknownTeamError{Title: title}
}

// Extract returns one record per requested title, in request order. Every
// title is resolved before any team document is fetched, and the first
// failing team aborts the whole batch.
func (x *Extractor) Extract(ctx context.Context, titles ...string) ([]*team.Team, error) {
	if len(titles) == 0 {
		return nil, errors.New("no team titles requested")
	}

	entries := make([]team.Entry, 0, len(titles))
	for _, title := range titles {
		entry, err := x.Lookup(title)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	now := x.now()
	teams := make([]*team.Team, 0, len(entries))
	for _, entry := range entries {
		t, err := x.extractTeam(ctx, entry, now)
		if err != nil {
			return nil, fmt.Errorf("extracting %q: %w", entry.Title, err)
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// ExtractOne extracts a single team.
func (x *Extractor) ExtractOne(ctx context.Context, title string) (*team.Team, error) {
	teams, err := x.Extract(ctx, title)
	if err != nil {
		return nil, err
	}
	return teams[0], nil
}

// extractTeam runs matches, meta, roster, player stats and team stats in that
// order; the statistics join needs the roster to be complete.
func (x *Extractor) extractTeam(ctx context.Context, entry team.Entry, now time.Time) (*team.Team, error) {
	start := time.Now()
	w := newWorking(entry, now, x.location)

	results, err := x.fetch(ctx, entry.URLs.Matches)
	if err != nil {
		return nil, err
	}
	if err := extractMatches(results, w); err != nil {
		return nil, err
	}
	extractMeta(results, w)

	roster, err := x.fetch(ctx, entry.URLs.Roster)
	if err != nil {
		return nil, err
	}
	extractRoster(roster, w)

	playerStats, err := x.fetch(ctx, entry.URLs.PlayerStats)
	if err != nil {
		return nil, err
	}
	joined := extractPlayerStats(playerStats, w)

	teamStats, err := x.fetch(ctx, entry.URLs.TeamStats)
	if err != nil {
		return nil, err
	}
	extractTeamStats(teamStats, w)

	x.record(w, joined)
	x.log.Info("Extracted team", logger.Fields{
		"team":        w.team.Title,
		"matches":     len(w.team.Matches),
		"players":     len(w.team.Players),
		"stats":       len(w.team.Stats),
		"dropped":     len(w.team.Dropped),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	for _, d := range w.team.Dropped {
		x.log.Debug("Dropped record", logger.Fields{
			"team":   w.team.Title,
			"source": d.Source,
			"reason": d.Reason,
			"cells":  d.Cells,
		})
	}
	return w.team, nil
}

func (x *Extractor) fetch(ctx context.Context, locator string) (*goquery.Document, error) {
	doc, err := x.fetcher.Fetch(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", locator, err)
	}
	return doc, nil
}

func (x *Extractor) record(w *working, joined int) {
	x.metrics.AddRecords(sourceMatches, len(w.team.Matches))
	x.metrics.AddRecords(sourceRoster, len(w.team.Players))
	x.metrics.AddRecords(sourcePlayerStats, joined)
	x.metrics.AddRecords(sourceTeamStats, len(w.team.Stats))
	for _, source := range []string{sourceMatches, sourceRoster, sourcePlayerStats, sourceTeamStats} {
		x.metrics.AddDropped(source, w.droppedBy(source))
	}
	x.metrics.TeamDone()
}

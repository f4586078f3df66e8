package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/khl-team/internal/logger"
	"github.com/pfrederiksen/khl-team/internal/metrics"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

const (
	UserAgent = "khl-team/1.0 (github.com/pfrederiksen/khl-team)"
	Timeout   = 30 * time.Second
)

// Fetcher retrieves pages over HTTP and parses them into goquery documents
type Fetcher struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
	log       *logger.Logger
	metrics   *metrics.Recorder
}

// Options tunes a Fetcher. Zero values fall back to the package defaults.
type Options struct {
	UserAgent         string
	Timeout           time.Duration
	RequestsPerMinute int // 0 disables pacing
	Logger            *logger.Logger
	Metrics           *metrics.Recorder
}

// New creates a new Fetcher instance
func New(opts Options) *Fetcher {
	if opts.UserAgent == "" {
		opts.UserAgent = UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = Timeout
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1)
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: opts.UserAgent,
		limiter:   limiter,
		log:       opts.Logger,
		metrics:   opts.Metrics,
	}
}

// Fetch downloads locator and returns the parsed document
func (f *Fetcher) Fetch(ctx context.Context, locator string) (*goquery.Document, error) {
	start := time.Now()
	doc, err := f.fetch(ctx, locator)
	f.metrics.ObserveFetch(time.Since(start), err)

	if err != nil {
		f.log.Error("Fetch failed", logger.Fields{"url": locator}, err)
		return nil, err
	}
	f.log.Debug("Fetched document", logger.Fields{
		"url":         locator,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return doc, nil
}

func (f *Fetcher) fetch(ctx context.Context, locator string) (*goquery.Document, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", locator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status code: %d", locator, resp.StatusCode)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", locator, err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

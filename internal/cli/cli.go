package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/khl-team/internal/config"
	"github.com/pfrederiksen/khl-team/internal/extract"
	"github.com/pfrederiksen/khl-team/internal/fetcher"
	"github.com/pfrederiksen/khl-team/internal/filter"
	"github.com/pfrederiksen/khl-team/internal/logger"
	"github.com/pfrederiksen/khl-team/internal/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNotFound = 2
)

var (
	flagConfig      string
	flagFormat      string
	flagVerbose     bool
	flagLogLevel    string
	flagMetricsFile string
	flagBaseURL     string
	flagTimezone    string
	flagRPM         int
)

// settings is the viper instance shared by the root command and its children.
var settings *viper.Viper

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	settings = viper.New()

	cmd := &cobra.Command{
		Use:   "khl-team",
		Short: "Extract KHL hockey team data from championat.com",
		Long: `A CLI tool that reads the KHL team catalog on championat.com and extracts
schedules, rosters, player statistics and team statistics for chosen teams.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	pf.StringVar(&flagFormat, "format", "text", "Output format: text or json")
	pf.BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
	pf.StringVar(&flagBaseURL, "base-url", "", "Site base URL")
	pf.StringVar(&flagTimezone, "timezone", "", "Time zone match times are published in")
	pf.IntVar(&flagRPM, "requests-per-minute", config.DefaultRequestsPerMinute, "Maximum page requests per minute (0 disables pacing)")

	settings.BindPFlag("log_level", pf.Lookup("log-level"))
	settings.BindPFlag("metrics_file", pf.Lookup("metrics-file"))
	settings.BindPFlag("base_url", pf.Lookup("base-url"))
	settings.BindPFlag("timezone", pf.Lookup("timezone"))
	settings.BindPFlag("requests_per_minute", pf.Lookup("requests-per-minute"))

	cmd.AddCommand(
		newTeamsCmd(),
		newTeamCmd(),
		newPlayersCmd(),
		newMatchesCmd(),
		newStatsCmd(),
		newCalendarCmd(),
	)

	return cmd
}

// session holds everything a subcommand needs for one run.
type session struct {
	cfg      *config.Config
	format   OutputFormat
	location *time.Location
	log      *logger.Logger
	metrics  *metrics.Recorder
}

// newSession loads configuration and builds the logger and metrics recorder.
func newSession(cmd *cobra.Command) (*session, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(settings, flagConfig)
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		format:   format,
		location: loc,
		log:      log,
		metrics:  metrics.New(),
	}, nil
}

// extractor fetches the catalog and returns a ready Extractor.
func (s *session) extractor(ctx context.Context) (*extract.Extractor, error) {
	f := fetcher.New(fetcher.Options{
		UserAgent:         s.cfg.UserAgent,
		Timeout:           s.cfg.Timeout,
		RequestsPerMinute: s.cfg.RequestsPerMinute,
		Logger:            s.log,
		Metrics:           s.metrics,
	})

	return extract.New(ctx, f,
		extract.WithLocators(extract.LocatorsFromConfig(s.cfg)),
		extract.WithLocation(s.location),
		extract.WithLogger(s.log),
		extract.WithMetrics(s.metrics),
	)
}

// finish writes the metrics textfile, if configured.
func (s *session) finish() {
	if err := s.metrics.WriteTextfile(s.cfg.MetricsFile); err != nil {
		s.log.Warn("Failed to write metrics file", logger.Fields{
			"path":  s.cfg.MetricsFile,
			"error": err.Error(),
		})
	}
}

// withSession runs fn with a fresh session and always finishes it.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.finish()
	return fn(cmd.Context(), s)
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var unknown *extract.UnknownTeamError
	if errors.As(err, &unknown) ||
		errors.Is(err, filter.ErrPlayerNotFound) ||
		errors.Is(err, filter.ErrMatchNotFound) {
		return ExitNotFound
	}
	return ExitError
}

// Execute runs the CLI
func Execute() {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitCode(err))
}

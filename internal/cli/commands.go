package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/khl-team/internal/calendar"
	"github.com/pfrederiksen/khl-team/internal/filter"
	"github.com/pfrederiksen/khl-team/internal/logger"
	"github.com/pfrederiksen/khl-team/internal/team"
	"github.com/spf13/cobra"
)

var (
	flagNumber   string
	flagLastName string
	flagRole     string

	flagPlayerSort string
	flagMatchSort  string

	flagOpponent string
	flagUpcoming bool
	flagResult   string
	flagDates    string

	flagOutput   string
	flagTitle    string
	flagDuration time.Duration
	flagRemind   time.Duration
)

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List every team in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				x, err := s.extractor(ctx)
				if err != nil {
					return err
				}
				catalog := x.Catalog()
				return WriteOutput(cmd.OutOrStdout(), &TeamsResult{
					FetchedAt: time.Now().UTC(),
					Teams:     catalog,
					Count:     len(catalog),
				}, s.format, flagVerbose)
			})
		},
	}
}

func newTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team TITLE [TITLE...]",
		Short: "Extract full records for one or more teams",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				x, err := s.extractor(ctx)
				if err != nil {
					return err
				}
				teams, err := x.Extract(ctx, args...)
				if err != nil {
					return err
				}
				return WriteOutput(cmd.OutOrStdout(), &TeamResult{Teams: teams}, s.format, flagVerbose)
			})
		},
	}
}

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players TITLE",
		Short: "List roster players, optionally by number, last name or role",
		Long: `List roster players of one team. At most one criterion is applied, in
priority order: --number, then --last-name, then --role.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := PlayerSortOrder(flagPlayerSort)
			if !order.valid() {
				return fmt.Errorf("invalid sort: %s (must be 'number', 'name' or 'role')", flagPlayerSort)
			}
			query := filter.PlayerQuery{
				Number:   flagNumber,
				LastName: flagLastName,
				Role:     flagRole,
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				t, err := extractOne(ctx, s, args[0])
				if err != nil {
					return err
				}
				players, err := query.Apply(t)
				if err != nil {
					return err
				}
				sortPlayers(players, order)
				return WriteOutput(cmd.OutOrStdout(), &PlayersResult{
					Team:    t.Title,
					Query:   query.String(),
					Players: players,
					Count:   len(players),
				}, s.format, flagVerbose)
			})
		},
	}

	cmd.Flags().StringVar(&flagNumber, "number", "", "Jersey number")
	cmd.Flags().StringVar(&flagLastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&flagRole, "role", "", "Role, as printed on the roster page")
	cmd.Flags().StringVar(&flagPlayerSort, "sort", string(SortByNumber), "Sort order: number, name or role")
	return cmd
}

func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagOpponent, "opponent", "", "Only matches against this team")
	cmd.Flags().BoolVar(&flagUpcoming, "upcoming", false, "Only matches not yet played")
	cmd.Flags().StringVar(&flagResult, "result", "", "Only matches with this result: won or lost")
	cmd.Flags().StringVar(&flagDates, "dates", "", "Date range, e.g. 01.03.2026 or 01.03.2026-15.03.2026")
}

// matchQuery builds the query from the match flags.
func matchQuery(loc *time.Location) (filter.MatchQuery, error) {
	result, err := filter.ParseResult(flagResult)
	if err != nil {
		return filter.MatchQuery{}, err
	}
	q := filter.MatchQuery{
		UpcomingOnly: flagUpcoming,
		Opponent:     flagOpponent,
		Result:       result,
	}
	if flagDates != "" {
		from, to, err := filter.ParseDateRange(flagDates, loc)
		if err != nil {
			return filter.MatchQuery{}, err
		}
		q.DateFrom, q.DateTo = from, to
	}
	return q, nil
}

func newMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches TITLE",
		Short: "List the schedule of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := MatchSortOrder(flagMatchSort)
			if !order.valid() {
				return fmt.Errorf("invalid sort: %s (must be 'date' or 'opponent')", flagMatchSort)
			}

			return withSession(cmd, func(ctx context.Context, s *session) error {
				query, err := matchQuery(s.location)
				if err != nil {
					return err
				}
				t, err := extractOne(ctx, s, args[0])
				if err != nil {
					return err
				}
				matches, err := query.Apply(t)
				if err != nil {
					return err
				}
				matches = sortMatches(matches, t.Title, order)
				return WriteOutput(cmd.OutOrStdout(), &MatchesResult{
					Team:    t.Title,
					Query:   query.String(),
					Matches: matches,
					Count:   len(matches),
				}, s.format, flagVerbose)
			})
		},
	}

	addMatchFlags(cmd)
	cmd.Flags().StringVar(&flagMatchSort, "sort", string(SortByDate), "Sort order: date or opponent")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats TITLE",
		Short: "Print team statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				t, err := extractOne(ctx, s, args[0])
				if err != nil {
					return err
				}
				return WriteOutput(cmd.OutOrStdout(), &StatsResult{
					Team:  t.Title,
					Stats: t.Stats,
				}, s.format, flagVerbose)
			})
		},
	}
}

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar TITLE",
		Short: "Export the schedule of a team as an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				query, err := matchQuery(s.location)
				if err != nil {
					return err
				}
				t, err := extractOne(ctx, s, args[0])
				if err != nil {
					return err
				}
				matches, err := query.Apply(t)
				if err != nil {
					return err
				}

				ics := calendar.GenerateICS(matches, calendar.Options{
					Title:    flagTitle,
					Duration: flagDuration,
					Remind:   flagRemind,
				})

				if flagOutput == "" || flagOutput == "-" {
					_, err := fmt.Fprint(cmd.OutOrStdout(), ics)
					return err
				}
				// Owner read/write only
				if err := os.WriteFile(flagOutput, []byte(ics), 0600); err != nil {
					return fmt.Errorf("writing calendar: %w", err)
				}
				s.log.Info("Wrote calendar", logger.Fields{
					"path":   flagOutput,
					"events": len(matches),
				})
				return nil
			})
		},
	}

	addMatchFlags(cmd)
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the calendar to this file instead of stdout")
	cmd.Flags().StringVar(&flagTitle, "title", calendar.DefaultTitle, "Event summary format; receives home and away titles")
	cmd.Flags().DurationVar(&flagDuration, "duration", calendar.DefaultDuration, "Event duration")
	cmd.Flags().DurationVar(&flagRemind, "remind", calendar.DefaultRemind, "Alarm offset before the match starts")
	return cmd
}

func extractOne(ctx context.Context, s *session, title string) (*team.Team, error) {
	x, err := s.extractor(ctx)
	if err != nil {
		return nil, err
	}
	return x.ExtractOne(ctx, title)
}

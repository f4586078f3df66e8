package filter

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dateLayout is the day-first date format used on the schedule pages.
const dateLayout = "02.01.2006"

var dateRangePattern = regexp.MustCompile(`^(\d{1,2}\.\d{1,2}\.\d{4})(?:\s*-\s*(\d{1,2}\.\d{1,2}\.\d{4}))?$`)

// ParseDateRange parses a date range string into start and end times.
//
// Supported formats:
//   - "01.03.2026" - a single day
//   - "01.03.2026-15.03.2026" - from the first day to the second, inclusive
//
// Start time is at 00:00:00, end time is at 23:59:59, both in loc.
func ParseDateRange(input string, loc *time.Location) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}
	if loc == nil {
		loc = time.UTC
	}

	matches := dateRangePattern.FindStringSubmatch(input)
	if matches == nil {
		return nil, nil, fmt.Errorf("invalid date range format. Use '01.03.2026' or '01.03.2026-15.03.2026'")
	}

	from, err := parseDay(matches[1], loc)
	if err != nil {
		return nil, nil, err
	}

	to := from
	if matches[2] != "" {
		if to, err = parseDay(matches[2], loc); err != nil {
			return nil, nil, err
		}
	}
	to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, loc)

	if from.After(to) {
		return nil, nil, fmt.Errorf("start date must be before end date")
	}
	return &from, &to, nil
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2.1.2006", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s", s)
	}
	return t, nil
}

// ParseResult converts "won" or "lost" (or "lose") into a Result. An empty
// string means any result.
func ParseResult(input string) (Result, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return ResultAny, nil
	case "won", "win":
		return ResultWon, nil
	case "lost", "lose":
		return ResultLost, nil
	default:
		return ResultAny, fmt.Errorf("invalid result %q: use 'won' or 'lost'", input)
	}
}

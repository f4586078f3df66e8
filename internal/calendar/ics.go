// Package calendar exports match schedules as iCalendar files.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/khl-team/internal/team"
)

// Defaults applied by GenerateICS when the matching Options field is zero.
const (
	DefaultTitle    = "Hockey: %s - %s"
	DefaultDuration = 3 * time.Hour
	DefaultRemind   = 15 * time.Minute
)

// uidNamespace scopes match UIDs so the same match always gets the same UID.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://www.championat.com/hockey/"))

// Options tunes the generated events
type Options struct {
	// Title is a format string receiving the home and away team titles.
	Title string
	// Duration is added to the start time to get DTEND.
	Duration time.Duration
	// Remind is how long before the start the alarm fires.
	Remind time.Duration
	// Now stamps DTSTAMP. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.Remind <= 0 {
		o.Remind = DefaultRemind
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// GenerateICS generates an iCalendar (.ics) file with one event per match
func GenerateICS(matches []*team.Match, opts Options) string {
	opts = opts.withDefaults()
	stamp := formatICSTime(opts.Now())

	var ics strings.Builder
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//KHL Team//khl-team//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, m := range matches {
		writeEvent(&ics, m, opts, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, m *team.Match, opts Options, stamp string) {
	start := m.Datetime
	end := start.Add(opts.Duration)
	summary := fmt.Sprintf(opts.Title, m.Teams[0], m.Teams[1])

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s@khl-team\r\n", MatchUID(m)))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	if m.IsFinished && len(m.Score) >= 2 {
		description := fmt.Sprintf("Final score: %d:%d", m.Score[0], m.Score[1])
		if m.Winner != "" {
			description += "\nWinner: " + m.Winner
		}
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("BEGIN:VALARM\r\n")
	ics.WriteString("ACTION:DISPLAY\r\n")
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(summary)))
	ics.WriteString(fmt.Sprintf("TRIGGER:%s\r\n", formatTrigger(opts.Remind)))
	ics.WriteString("END:VALARM\r\n")

	ics.WriteString("END:VEVENT\r\n")
}

// MatchUID derives a stable identifier from the teams and start time.
func MatchUID(m *team.Match) uuid.UUID {
	name := fmt.Sprintf("%s|%s|%s", m.Teams[0], m.Teams[1], formatICSTime(m.Datetime))
	return uuid.NewSHA1(uidNamespace, []byte(name))
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatTrigger renders a negative duration relative to the event start,
// e.g. 15 minutes becomes -PT15M.
func formatTrigger(d time.Duration) string {
	total := int(d / time.Minute)
	if total <= 0 {
		total = int(DefaultRemind / time.Minute)
	}
	hours, minutes := total/60, total%60

	var b strings.Builder
	b.WriteString("-PT")
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	return b.String()
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

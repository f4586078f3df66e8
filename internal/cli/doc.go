// Package cli implements the command-line interface for khl-team.
//
// The cli package provides the Cobra-based CLI with subcommands for listing
// the team catalog, extracting full team records, querying players and matches,
// printing team statistics and exporting schedules as iCalendar files. Output
// is text or JSON. It coordinates the config, fetcher, extract, filter and
// calendar packages, and writes a metrics textfile when one is configured.
package cli

// Package cli implements the command-line interface for calendar-updater.
//
// The cli package provides the Cobra-based CLI with a single entry point:
// it loads settings, scrapes both portals, merges the day's sessions, writes
// calendar events (or prints them with --dry-run), and reports a run summary
// in text or JSON.
package cli

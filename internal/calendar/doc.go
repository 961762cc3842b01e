// Package calendar builds Google Calendar event payloads from the day's
// sessions and inserts them through the Calendar API.
//
// The Writer interface separates payload construction from delivery so the
// CLI can swap in a dry-run writer that prints events instead of creating
// them.
package calendar

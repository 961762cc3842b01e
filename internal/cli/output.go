package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/megabyte6/calendar-updater/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// SessionSummary is the per-session slice of the run summary.
type SessionSummary struct {
	Start       string   `json:"start"`
	End         string   `json:"end"`
	CreateCount int      `json:"create_count"`
	JRCount     int      `json:"jr_count"`
	Instructors []string `json:"instructors,omitempty"`
}

// Result summarizes what a run scraped and wrote.
type Result struct {
	RanAt        time.Time        `json:"ran_at"`
	DryRun       bool             `json:"dry_run,omitempty"`
	SessionCount int              `json:"session_count"`
	Sessions     []SessionSummary `json:"sessions"`
}

// NewResult builds a run summary from the day's sessions.
func NewResult(sessions []*schedule.Session, dryRun bool) *Result {
	result := &Result{
		RanAt:        time.Now().UTC(),
		DryRun:       dryRun,
		SessionCount: len(sessions),
		Sessions:     make([]SessionSummary, 0, len(sessions)),
	}

	for _, s := range sessions {
		result.Sessions = append(result.Sessions, SessionSummary{
			Start:       s.Start.Format("3:04 PM"),
			End:         s.End.Format("3:04 PM"),
			CreateCount: len(s.CreateStudents()),
			JRCount:     len(s.JRStudents()),
			Instructors: s.InstructorNames(),
		})
	}

	return result
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, result *Result) error {
	verb := "created"
	if result.DryRun {
		verb = "would be created (dry run)"
	}

	if result.SessionCount == 0 {
		fmt.Fprintln(w, "No classes today; no events created.")
		return nil
	}

	fmt.Fprintf(w, "%d events %s:\n", result.SessionCount, verb)
	for _, s := range result.Sessions {
		fmt.Fprintf(w, "  %s - %s: %d CREATE | %d JR", s.Start, s.End, s.CreateCount, s.JRCount)
		if len(s.Instructors) > 0 {
			fmt.Fprintf(w, " (instructors: %s)", strings.Join(s.Instructors, ", "))
		}
		fmt.Fprintln(w)
	}

	return nil
}

package calendar

import (
	"context"
	"fmt"
	"io"

	"github.com/megabyte6/calendar-updater/internal/logger"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Writer inserts calendar events and returns a link to the created event.
type Writer interface {
	Insert(ctx context.Context, event *gcal.Event) (htmlLink string, err error)
}

// GoogleWriter inserts events into a Google Calendar.
type GoogleWriter struct {
	service    *gcal.Service
	calendarID string
}

// NewGoogleWriter creates a writer for the given calendar. Extra client
// options are passed through to the API client, which lets tests point it
// at a local server.
func NewGoogleWriter(ctx context.Context, calendarID string, opts ...option.ClientOption) (*GoogleWriter, error) {
	service, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}

	return &GoogleWriter{
		service:    service,
		calendarID: calendarID,
	}, nil
}

// Insert creates the event on the calendar.
func (w *GoogleWriter) Insert(ctx context.Context, event *gcal.Event) (string, error) {
	created, err := w.service.Events.Insert(w.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("inserting calendar event: %w", err)
	}
	return created.HtmlLink, nil
}

// DryRunWriter prints events instead of inserting them.
type DryRunWriter struct {
	Out io.Writer
}

// NewDryRunWriter creates a writer that prints to the given destination.
func NewDryRunWriter(out io.Writer) *DryRunWriter {
	return &DryRunWriter{Out: out}
}

// Insert prints the event that would have been created.
func (w *DryRunWriter) Insert(_ context.Context, event *gcal.Event) (string, error) {
	fmt.Fprintf(w.Out, "--- Event ---\n")
	fmt.Fprintf(w.Out, "Summary: %s\n", event.Summary)
	fmt.Fprintf(w.Out, "Start:   %s (%s)\n", event.Start.DateTime, event.Start.TimeZone)
	fmt.Fprintf(w.Out, "End:     %s (%s)\n", event.End.DateTime, event.End.TimeZone)
	fmt.Fprintf(w.Out, "%s\n\n", event.Description)
	return "", nil
}

// InsertAll inserts events in order, logging the link for each created
// event. The first failure aborts the remaining inserts.
func InsertAll(ctx context.Context, w Writer, events []*gcal.Event) error {
	for _, event := range events {
		link, err := w.Insert(ctx, event)
		if err != nil {
			return fmt.Errorf("event %q: %w", event.Summary, err)
		}

		// A dry-run writer returns no link and creates nothing to count.
		if link != "" {
			logger.IncrCounter("calendar.events_created")
			logger.Info("calendar event created", logger.Fields{
				"summary": event.Summary,
				"link":    link,
			})
		}
	}
	return nil
}

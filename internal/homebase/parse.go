package homebase

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/megabyte6/calendar-updater/internal/schedule"
)

// Homebase renders the shifts block with different class layouts depending
// on the viewport the page was built for, so each datum has a list of
// selector variants tried in order.
var (
	nameSelectors = []string{
		"div.ShiftCard div.ShiftCard__name_and_role > div:nth-child(1) > span",
		"div.ShiftCard div.ShiftCard__name_and_role span.ShiftCard__name",
		"div.ShiftCard--card div.ShiftCard__name_and_role > div:first-child > span",
	}
	timeRangeSelectors = []string{
		"div.ShiftCard div.ShiftCard__status_and_scheduled div.ShiftCard__time-range > span",
		"div.ShiftCard div.ShiftCard__time-range > span",
		"div.ShiftCard--card div.ShiftCard__time-range.mt4 > span",
	}
)

// parseShifts extracts today's instructor shifts from the dashboard page.
func parseShifts(doc *goquery.Document, day time.Time, loc *time.Location) ([]schedule.Instructor, error) {
	names := findTexts(doc, nameSelectors)
	if len(names) == 0 {
		return nil, fmt.Errorf("could not find instructor names on the schedule dashboard")
	}

	ranges := findTexts(doc, timeRangeSelectors)
	if len(ranges) == 0 {
		return nil, fmt.Errorf("could not find instructor shift times on the schedule dashboard")
	}

	if len(names) != len(ranges) {
		return nil, fmt.Errorf("found %d instructor names but %d shift times", len(names), len(ranges))
	}

	instructors := make([]schedule.Instructor, 0, len(names))
	for i, name := range names {
		start, end, err := ParseShiftRange(ranges[i], day, loc)
		if err != nil {
			return nil, fmt.Errorf("shift for %s: %w", name, err)
		}
		instructors = append(instructors, schedule.Instructor{
			Name:  name,
			Start: start,
			End:   end,
		})
	}

	return instructors, nil
}

// findTexts returns the trimmed text of every element matched by the first
// selector variant that matches anything.
func findTexts(doc *goquery.Document, selectors []string) []string {
	for _, selector := range selectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}

		texts := make([]string, 0, sel.Length())
		sel.Each(func(i int, s *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(s.Text()))
		})
		return texts
	}
	return nil
}

// ParseShiftRange parses a shift time range like "7:00 am - 3:00 pm /" into
// start and end times anchored on the given day.
func ParseShiftRange(raw string, day time.Time, loc *time.Location) (start, end time.Time, err error) {
	trimmed := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(raw), "/ "))

	parts := strings.SplitN(trimmed, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed shift range %q", raw)
	}

	start, err = schedule.ParseClockTime(parts[0], day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("shift range %q: %w", raw, err)
	}
	end, err = schedule.ParseClockTime(parts[1], day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("shift range %q: %w", raw, err)
	}

	return start, end, nil
}

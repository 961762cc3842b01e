package mystudio

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/megabyte6/calendar-updater/internal/schedule"
)

// The schedule page shows one collapsible list per curriculum: CREATE sits
// in the second column block and JR in the third.
const (
	createListSelector = "#i-s-container > div > div:nth-child(1) > div:nth-child(2) > div > div > div.sheduled_child_list"
	jrListSelector     = "#i-s-container > div > div:nth-child(1) > div:nth-child(3) > div > div > div.sheduled_child_list"

	classTimeSelector = "#class_datatable_view > div > div:nth-child(5) > div:nth-child(2) > div"
	rosterRowSelector = "#DataTables_Table_class_scheduler > tbody > tr"
	studentCellFilter = "td:nth-child(4) > span"
)

// classEntry is one class in a curriculum's dropdown list: its start time
// and a link to the page with its roster.
type classEntry struct {
	start time.Time
	href  string
}

// rosterPage is the parsed content of a single class page.
type rosterPage struct {
	start        time.Time
	studentNames []string
}

// parseClassList extracts the day's classes for one curriculum. A missing
// list means that curriculum has no classes today and yields no entries.
func parseClassList(doc *goquery.Document, curriculum schedule.Curriculum, day time.Time, loc *time.Location) ([]classEntry, error) {
	selector := createListSelector
	if curriculum == schedule.CurriculumJr {
		selector = jrListSelector
	}

	list := doc.Find(selector)
	if list.Length() == 0 {
		return nil, nil
	}

	// The list block can be served before its items have loaded. Treat it
	// like a missing list so the caller's retry and no-classes paths apply.
	items := list.Find("div > ul > li")
	if items.Length() == 0 {
		return nil, nil
	}

	var entries []classEntry
	var parseErr error
	// The first list item is the dropdown header, not a class.
	items.Slice(1, goquery.ToEnd).Each(func(i int, sel *goquery.Selection) {
		if parseErr != nil {
			return
		}

		text := strings.TrimSpace(sel.Text())
		start, err := schedule.ParseClockTime(text, day, loc)
		if err != nil {
			parseErr = fmt.Errorf("class list entry %d: %w", i+1, err)
			return
		}

		entries = append(entries, classEntry{
			start: start,
			href:  sel.Find("a").AttrOr("href", ""),
		})
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return entries, nil
}

// parseRoster extracts the class time and student names from a class page.
// An empty roster table is fine; a missing class time header is not.
func parseRoster(doc *goquery.Document, day time.Time, loc *time.Location) (*rosterPage, error) {
	timeText := strings.TrimSpace(doc.Find(classTimeSelector).First().Text())
	if timeText == "" {
		return nil, fmt.Errorf("class page has no class time header")
	}

	start, err := schedule.ParseClockTime(timeText, day, loc)
	if err != nil {
		return nil, fmt.Errorf("class time header: %w", err)
	}

	page := &rosterPage{start: start}
	doc.Find(rosterRowSelector).Each(func(i int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(studentCellFilter).Text())
		if name != "" {
			page.studentNames = append(page.studentNames, name)
		}
	})

	return page, nil
}

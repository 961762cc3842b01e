package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/megabyte6/calendar-updater/internal/calendar"
	"github.com/megabyte6/calendar-updater/internal/schedule"
)

func main() {
	// Build a sample session the way a scrape of a busy afternoon would.
	start := time.Date(2026, 3, 16, 16, 0, 0, 0, time.Local)
	session := schedule.NewSession(start)
	session.Students = []schedule.Student{
		{Name: "Ada Lovelace", Curriculum: schedule.CurriculumCreate},
		{Name: "Grace Hopper", Curriculum: schedule.CurriculumCreate},
		{Name: "Tim Berners-Lee", Curriculum: schedule.CurriculumJr},
	}
	session.Instructors = []schedule.Instructor{
		{Name: "Sam Carter", Start: start.Add(-time.Hour), End: start.Add(3 * time.Hour)},
	}

	event := calendar.BuildEvent(session, []string{"Grace Hopper"}, nil, "America/Vancouver")

	payload, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding event: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Event payload that would be sent to the Calendar API:")
	fmt.Println("---")
	fmt.Println(string(payload))
	fmt.Println("---")
	fmt.Printf("Summary:     %s\n", event.Summary)
	fmt.Printf("Description:\n%s\n", event.Description)
}

package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/megabyte6/calendar-updater/internal/schedule"
	gcal "google.golang.org/api/calendar/v3"
)

// clockLayout renders times the way they appear on the studio schedule,
// e.g. "03:30PM".
const clockLayout = "03:04PM"

// BuildEvent turns a session into a calendar event payload.
//
// The summary is the session start time followed by the CREATE and JR
// student counts. The description lists the instructors on shift and the
// roster broken into the Unity, JR, Focus, and IMPACT groups.
func BuildEvent(s *schedule.Session, unityNames, focusNames []string, timezone string) *gcal.Event {
	summary := fmt.Sprintf("%s - %d | %d",
		s.Start.Format(clockLayout), len(s.CreateStudents()), len(s.JRStudents()))

	return &gcal.Event{
		Summary:     summary,
		Description: buildDescription(s, unityNames, focusNames),
		Start: &gcal.EventDateTime{
			DateTime: s.Start.Format(time.RFC3339),
			TimeZone: timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: s.End.Format(time.RFC3339),
			TimeZone: timezone,
		},
	}
}

// BuildEvents builds one event per session, in order.
func BuildEvents(sessions []*schedule.Session, unityNames, focusNames []string, timezone string) []*gcal.Event {
	events := make([]*gcal.Event, 0, len(sessions))
	for _, s := range sessions {
		events = append(events, BuildEvent(s, unityNames, focusNames, timezone))
	}
	return events
}

func buildDescription(s *schedule.Session, unityNames, focusNames []string) string {
	var sections []string

	if len(s.Instructors) > 0 {
		lines := make([]string, 0, len(s.Instructors))
		for _, instr := range s.Instructors {
			lines = append(lines, fmt.Sprintf("%s (%s - %s)",
				instr.Name, instr.Start.Format(clockLayout), instr.End.Format(clockLayout)))
		}
		sections = append(sections, "Instructors:\n"+strings.Join(lines, "\n"))
	}

	unity := s.UnityStudents(unityNames)
	if len(unity) > 0 {
		sections = append(sections, "Unity:\n"+joinNames(unity))
	}

	jr := s.JRStudents()
	if len(jr) > 0 {
		sections = append(sections, "JR:\n"+joinNames(jr))
	}

	focus := s.FocusStudents(focusNames)
	if len(focus) > 0 {
		sections = append(sections, "Focus:\n"+joinNames(focus))
	}

	// Everyone in CREATE who is not already listed under Unity or Focus.
	impact := make([]string, 0)
	for _, student := range s.CreateStudents() {
		if containsStudent(unity, student) || containsStudent(focus, student) {
			continue
		}
		impact = append(impact, student.Name)
	}
	sections = append(sections, "IMPACT:\n"+strings.Join(impact, "\n"))

	return strings.Join(sections, "\n\n")
}

func joinNames(students []schedule.Student) string {
	names := make([]string, 0, len(students))
	for _, student := range students {
		names = append(names, student.Name)
	}
	return strings.Join(names, "\n")
}

func containsStudent(students []schedule.Student, target schedule.Student) bool {
	for _, student := range students {
		if student.Name == target.Name {
			return true
		}
	}
	return false
}

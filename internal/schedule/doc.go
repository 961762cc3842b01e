// Package schedule provides the domain model for a day's class schedule.
//
// A Session is one class block with its student roster and the instructors
// whose shifts overlap it. Sessions scraped from different curricula are
// merged by start time with Combine, and instructor shifts from the staffing
// site are matched onto sessions with AssignInstructors.
package schedule

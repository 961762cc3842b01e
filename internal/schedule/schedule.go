package schedule

import (
	"time"
)

// Curriculum identifies which program a student is enrolled in.
type Curriculum string

const (
	CurriculumCreate Curriculum = "CREATE"
	CurriculumJr     Curriculum = "JR"
)

// Student is a single student on a session roster.
type Student struct {
	Name       string     `json:"name"`
	Curriculum Curriculum `json:"curriculum"`
}

// Instructor is a staff member with a shift for the day.
type Instructor struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Session represents one class block on the day's schedule.
type Session struct {
	Start       time.Time    `json:"start"`
	End         time.Time    `json:"end"`
	Students    []Student    `json:"students"`
	Instructors []Instructor `json:"instructors"`
}

// NewSession creates a session starting at the given time.
// Sessions run for one hour unless an end time is set later.
func NewSession(start time.Time) *Session {
	return &Session{
		Start: start,
		End:   start.Add(time.Hour),
	}
}

// StudentNames returns the names of all students in the session.
func (s *Session) StudentNames() []string {
	names := make([]string, 0, len(s.Students))
	for _, student := range s.Students {
		names = append(names, student.Name)
	}
	return names
}

// CreateStudents returns the students enrolled in the CREATE curriculum.
func (s *Session) CreateStudents() []Student {
	return s.studentsIn(CurriculumCreate)
}

// JRStudents returns the students enrolled in the JR curriculum.
func (s *Session) JRStudents() []Student {
	return s.studentsIn(CurriculumJr)
}

func (s *Session) studentsIn(c Curriculum) []Student {
	matched := make([]Student, 0)
	for _, student := range s.Students {
		if student.Curriculum == c {
			matched = append(matched, student)
		}
	}
	return matched
}

// UnityStudents returns the students whose names appear in the given
// Unity group list.
func (s *Session) UnityStudents(unityNames []string) []Student {
	return s.studentsNamed(unityNames)
}

// FocusStudents returns the students whose names appear in the given
// Focus group list.
func (s *Session) FocusStudents(focusNames []string) []Student {
	return s.studentsNamed(focusNames)
}

func (s *Session) studentsNamed(names []string) []Student {
	matched := make([]Student, 0)
	for _, student := range s.Students {
		for _, name := range names {
			if student.Name == name {
				matched = append(matched, student)
				break
			}
		}
	}
	return matched
}

// InstructorNames returns the names of all instructors assigned to the session.
func (s *Session) InstructorNames() []string {
	names := make([]string, 0, len(s.Instructors))
	for _, instr := range s.Instructors {
		names = append(names, instr.Name)
	}
	return names
}

// IsScheduled reports whether the instructor's shift overlaps this session.
// Shifts that only touch the session boundary do not count as overlapping.
func (s *Session) IsScheduled(instr Instructor) bool {
	return instr.Start.Before(s.End) && instr.End.After(s.Start)
}

// SessionAt returns the session with the given start time, or nil if none.
func SessionAt(sessions []*Session, start time.Time) *Session {
	for _, session := range sessions {
		if session.Start.Equal(start) {
			return session
		}
	}
	return nil
}

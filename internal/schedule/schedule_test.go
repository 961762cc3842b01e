package schedule

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 15, hour, minute, 0, 0, time.UTC)
}

func TestNewSessionDefaultsEndToOneHour(t *testing.T) {
	s := NewSession(at(15, 30))
	if !s.End.Equal(at(16, 30)) {
		t.Errorf("expected end 16:30, got %v", s.End)
	}
}

func TestStudentQueries(t *testing.T) {
	s := NewSession(at(16, 0))
	s.Students = []Student{
		{Name: "Ada", Curriculum: CurriculumCreate},
		{Name: "Grace", Curriculum: CurriculumCreate},
		{Name: "Linus", Curriculum: CurriculumJr},
	}

	if got := len(s.CreateStudents()); got != 2 {
		t.Errorf("expected 2 CREATE students, got %d", got)
	}
	if got := len(s.JRStudents()); got != 1 {
		t.Errorf("expected 1 JR student, got %d", got)
	}

	unity := s.UnityStudents([]string{"Grace"})
	if len(unity) != 1 || unity[0].Name != "Grace" {
		t.Errorf("expected Unity group [Grace], got %v", unity)
	}

	focus := s.FocusStudents([]string{"Nobody"})
	if len(focus) != 0 {
		t.Errorf("expected empty Focus group, got %v", focus)
	}

	names := s.StudentNames()
	if len(names) != 3 || names[0] != "Ada" {
		t.Errorf("unexpected student names: %v", names)
	}
}

func TestIsScheduled(t *testing.T) {
	s := NewSession(at(16, 0)) // 16:00 - 17:00

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"covers whole session", at(12, 0), at(20, 0), true},
		{"overlaps start", at(15, 0), at(16, 30), true},
		{"overlaps end", at(16, 45), at(18, 0), true},
		{"inside session", at(16, 15), at(16, 45), true},
		{"ends at session start", at(14, 0), at(16, 0), false},
		{"starts at session end", at(17, 0), at(19, 0), false},
		{"before session", at(9, 0), at(11, 0), false},
		{"after session", at(18, 0), at(20, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr := Instructor{Name: "Sam", Start: tt.start, End: tt.end}
			if got := s.IsScheduled(instr); got != tt.expected {
				t.Errorf("IsScheduled(%v-%v) = %v, expected %v",
					tt.start.Format("15:04"), tt.end.Format("15:04"), got, tt.expected)
			}
		})
	}
}

func TestSessionAt(t *testing.T) {
	sessions := []*Session{NewSession(at(15, 0)), NewSession(at(16, 0))}

	if got := SessionAt(sessions, at(16, 0)); got != sessions[1] {
		t.Errorf("expected session starting 16:00, got %v", got)
	}
	if got := SessionAt(sessions, at(17, 0)); got != nil {
		t.Errorf("expected nil for unknown start time, got %v", got)
	}
}

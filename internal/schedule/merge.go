package schedule

// Combine merges sessions that share a start time into a single session.
// The first session seen for a start time keeps its place in the result;
// later duplicates contribute their students and instructors to it.
func Combine(sessions ...*Session) []*Session {
	combined := make([]*Session, 0, len(sessions))
	for _, session := range sessions {
		existing := SessionAt(combined, session.Start)
		if existing != nil {
			existing.Students = append(existing.Students, session.Students...)
			existing.Instructors = append(existing.Instructors, session.Instructors...)
			continue
		}
		combined = append(combined, session)
	}
	return combined
}

// AssignInstructors adds each instructor to every session its shift overlaps.
// An instructor already on a session (matched by name) is not added twice.
func AssignInstructors(sessions []*Session, instructors []Instructor) {
	for _, session := range sessions {
		for _, instr := range instructors {
			if session.IsScheduled(instr) && !hasInstructor(session, instr.Name) {
				session.Instructors = append(session.Instructors, instr)
			}
		}
	}
}

func hasInstructor(s *Session, name string) bool {
	for _, instr := range s.Instructors {
		if instr.Name == name {
			return true
		}
	}
	return false
}

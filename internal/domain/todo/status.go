package todo

// Status narrows a list read by completion state.
type Status string

const (
	StatusAll       Status = "all"
	StatusCompleted Status = "completed"
	StatusActive    Status = "active"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusAll, StatusCompleted, StatusActive:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw input to a Status. Unknown or empty values fall
// back to StatusAll.
func ParseStatus(raw string) Status {
	s := Status(raw)
	if !s.IsValid() {
		return StatusAll
	}
	return s
}

// Completed returns the completed-flag value the status narrows to, or nil
// for StatusAll.
func (s Status) Completed() *bool {
	var v bool
	switch s {
	case StatusCompleted:
		v = true
	case StatusActive:
		v = false
	default:
		return nil
	}
	return &v
}

// Matches reports whether a todo passes the status narrowing.
func (s Status) Matches(t *Todo) bool {
	c := s.Completed()
	return c == nil || *c == t.Completed
}

package organizer

import "fmt"

// Status is what happened to one file during a pass.
type Status string

const (
	StatusMoved       Status = "moved"
	StatusUnresolved  Status = "unresolved"
	StatusInvalidName Status = "invalid-name"
	StatusMkdirFailed Status = "mkdir-failed"
	StatusMoveFailed  Status = "move-failed"
	StatusConflict    Status = "conflict"
)

// Outcome records the handling of a single screenshot.
type Outcome struct {
	File   string
	AppID  uint64
	Game   string
	Dest   string
	Status Status
	Err    error
}

// Result summarizes one pass.
type Result struct {
	Considered int
	Moved      int
	Outcomes   []Outcome
}

// Summary renders the "moved X/Y" line.
func (r Result) Summary() string {
	return fmt.Sprintf("moved %d/%d", r.Moved, r.Considered)
}

// Count returns how many outcomes have status s.
func (r Result) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

func (r *Result) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.Status == StatusMoved {
		r.Moved++
	}
}

package logging

import "github.com/msomdec/roster/internal/domain"

// Entry is one recorded log call.
type Entry struct {
	Level   domain.LogLevel
	Message string
}

// Recorder keeps every entry it receives, in order.
type Recorder struct {
	Entries []Entry
}

func (r *Recorder) Log(level domain.LogLevel, message string) {
	r.Entries = append(r.Entries, Entry{Level: level, Message: message})
}

// Messages returns the recorded messages at the given level.
func (r *Recorder) Messages(level domain.LogLevel) []string {
	var out []string
	for _, e := range r.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Package logging holds sinks for the registry's leveled log entries.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/msomdec/roster/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Console writes entries as "[timestamp] Level: message" lines.
type Console struct {
	w      io.Writer
	now    func() time.Time
	colors map[domain.LogLevel]*color.Color
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithClock replaces the clock used for timestamps.
func WithClock(now func() time.Time) ConsoleOption {
	return func(c *Console) { c.now = now }
}

// WithoutColor disables level coloring regardless of the terminal.
func WithoutColor() ConsoleOption {
	return func(c *Console) {
		for _, col := range c.colors {
			col.DisableColor()
		}
	}
}

// NewConsole creates a Console writing to w. Level names are colored when
// color output is enabled for the process.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		w:   w,
		now: time.Now,
		colors: map[domain.LogLevel]*color.Color{
			domain.LogLevelDebug:   color.New(color.FgHiBlack),
			domain.LogLevelInfo:    color.New(color.FgCyan),
			domain.LogLevelWarning: color.New(color.FgYellow),
			domain.LogLevelError:   color.New(color.FgRed, color.Bold),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Log(level domain.LogLevel, message string) {
	name := level.String()
	if col, ok := c.colors[level]; ok {
		name = col.Sprint(name)
	}
	fmt.Fprintf(c.w, "[%s] %s: %s\n", c.now().UTC().Format(timestampLayout), name, message)
}

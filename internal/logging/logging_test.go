package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/msomdec/roster/internal/domain"
	"github.com/msomdec/roster/internal/logging"
)

func TestConsole_Format(t *testing.T) {
	var buf bytes.Buffer
	fixed := time.Date(2024, 3, 9, 14, 5, 7, 123_000_000, time.FixedZone("CET", 3600))
	c := logging.NewConsole(&buf, logging.WithoutColor(), logging.WithClock(func() time.Time { return fixed }))

	c.Log(domain.LogLevelInfo, "User Alice Johnson added with ID 1")
	c.Log(domain.LogLevelWarning, "User 9 not found")

	want := "[2024-03-09T13:05:07.123Z] Info: User Alice Johnson added with ID 1\n" +
		"[2024-03-09T13:05:07.123Z] Warning: User 9 not found\n"
	if got := buf.String(); got != want {
		t.Fatalf("expected\n%q\ngot\n%q", want, got)
	}
}

func TestSlog_ForwardsAtMappedLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := logging.NewSlog(logger)

	s.Log(domain.LogLevelWarning, "User 3 not found")

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Fatalf("expected WARN record, got %q", out)
	}
	if !strings.Contains(out, `msg="User 3 not found"`) {
		t.Fatalf("expected message in record, got %q", out)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   domain.LogLevel
		want slog.Level
	}{
		{domain.LogLevelDebug, slog.LevelDebug},
		{domain.LogLevelInfo, slog.LevelInfo},
		{domain.LogLevelWarning, slog.LevelWarn},
		{domain.LogLevelError, slog.LevelError},
	}
	for _, tc := range tests {
		if got := logging.SlogLevel(tc.in); got != tc.want {
			t.Fatalf("%v: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestRecorder_Messages(t *testing.T) {
	var r logging.Recorder
	r.Log(domain.LogLevelInfo, "a")
	r.Log(domain.LogLevelWarning, "b")
	r.Log(domain.LogLevelInfo, "c")

	got := r.Messages(domain.LogLevelInfo)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("expected [a c], got %v", got)
	}
	if len(r.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(r.Entries))
	}
}

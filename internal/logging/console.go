package logging

import (
	"io"
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// NewConsole builds a SlogLogger over a charmbracelet/log handler: short
// colored level tags and a kitchen-clock timestamp. The CLI uses it for
// stderr; NewText stays for plain logfmt output.
func NewConsole(w io.Writer, level slog.Level) *SlogLogger {
	h := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           charmlog.Level(level),
	})
	return NewSlogLogger(slog.New(h))
}

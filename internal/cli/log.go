// Package cli implements the wordnet command-line interface.
//
// The CLI loads a synset/hypernym pair and answers noun queries, finds
// outcasts, runs shortest-common-ancestor queries over raw digraphs,
// renders ancestral paths and serves the HTTP API. It is built using cobra
// and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - nouns: List or count nouns, or pick one interactively
//   - isnoun, sca, distance: Single noun queries
//   - outcast: Mark the outcast of each input list
//   - ancestor: Answer "v w" queries over a digraph file
//   - graph: Render the ancestral path of two nouns
//   - serve: Run the HTTP API
//
// # Configuration
//
// Data file locations and tuning come from a TOML file (--config, default
// $XDG_CONFIG_HOME/wordnet/config.toml). --synsets and --hypernyms override
// the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to the lexicon loader and the server.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Loaded 82115 synsets, 119188 nouns (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

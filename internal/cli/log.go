package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// chartTimeFormat is HH:MM:SS with centiseconds, e.g. "14:32:01.45".
const chartTimeFormat = "15:04:05.00"

// newLogger returns the stderr logger shared by every chart command.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      chartTimeFormat,
		Level:           level,
	})
}

// progress times one render or watch cycle.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done reports the cycle, e.g. "Rendered load.toml (12ms)".
func (p *progress) done(msg string) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Infof("%s (%s)", msg, elapsed)
}

type loggerKey struct{}

// withLogger hands the root command's logger to subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger set by the root command. Commands
// run outside it (tests, completion) fall back to log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	l, ok := ctx.Value(loggerKey{}).(*log.Logger)
	if !ok {
		return log.Default()
	}
	return l
}

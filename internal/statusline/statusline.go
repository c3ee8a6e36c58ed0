// Package statusline composes the single colored line shown by the host
// under its prompt.
package statusline

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/giannimassi/ctxline/internal/budget"
	"github.com/giannimassi/ctxline/internal/format"
	"github.com/giannimassi/ctxline/internal/transcript"
	"github.com/giannimassi/ctxline/pkg/model"
)

// Segment texts that are not derived from input.
const (
	FallbackText    = "Claude Code"
	NoUsageText     = "[No usage data]"
	CompactSoonText = "COMPACT SOON"
)

// Config is built once at startup and shared read-only by the composer.
type Config struct {
	Palette       Palette
	Limits        budget.Table
	MaxPathLength int
	Fallback      string
}

// DefaultConfig returns the configuration used by the ctxline command.
func DefaultConfig() Config {
	return Config{
		Palette:       DefaultPalette(),
		Limits:        budget.DefaultTable(),
		MaxPathLength: format.DefaultPathLength,
		Fallback:      FallbackText,
	}
}

// Result is the outcome of one render. Line is always printable: when Err
// is set it holds the fallback line.
type Result struct {
	Line string
	Err  error
}

// OK reports whether the line was composed from the input.
func (r Result) OK() bool {
	return r.Err == nil
}

// Composer builds status lines from host session documents.
type Composer struct {
	Config Config
	Logger zerolog.Logger
	// Getwd resolves the working directory when the host omits it.
	Getwd func() (string, error)
}

// New returns a Composer with a disabled logger.
func New(cfg Config) *Composer {
	return &Composer{
		Config: cfg,
		Logger: zerolog.Nop(),
		Getwd:  os.Getwd,
	}
}

// Render composes the line for a raw session document. It never fails:
// any error or panic yields the fallback line with Err set.
func (c *Composer) Render(input []byte) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Line: c.FallbackLine(), Err: fmt.Errorf("render panic: %v", r)}
		}
	}()

	line, err := c.compose(input)
	if err != nil {
		return Result{Line: c.FallbackLine(), Err: err}
	}
	return Result{Line: line}
}

// FallbackLine is printed whenever composition fails.
func (c *Composer) FallbackLine() string {
	return c.Config.Palette.Muted(c.Config.Fallback)
}

func (c *Composer) compose(input []byte) (string, error) {
	session, err := model.ParseSession(input)
	if err != nil {
		return "", fmt.Errorf("parse session: %w", err)
	}

	cwd := session.WorkingDir()
	if cwd == "" {
		getwd := c.Getwd
		if getwd == nil {
			getwd = os.Getwd
		}
		if cwd, err = getwd(); err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
	}

	b := c.Config.Limits.Budget(session.ModelID())

	var ledger *model.Ledger
	if path := session.TranscriptPath; path != "" {
		ledger, err = transcript.ReadLedger(path)
		if err != nil {
			c.Logger.Debug().Err(err).Str("path", path).Msg("transcript unavailable")
			ledger = nil
		} else if ledger != nil {
			c.Logger.Debug().
				Str("path", path).
				Int64("total_tokens", ledger.TotalTokens).
				Int("messages", ledger.MessageCount).
				Msg("transcript read")
		}
	}

	return strings.Join(c.Segments(session.ModelName(), cwd, b, ledger), " "), nil
}

// Segments returns the colored fragments of the line in display order:
// model, directory, usage, remaining budget, message count. The last two
// are optional, and usage is replaced by a placeholder when ledger holds
// no tokens.
func (c *Composer) Segments(modelName, cwd string, b budget.Budget, ledger *model.Ledger) []string {
	pal := c.Config.Palette

	segments := []string{
		pal.Paint(pal.Model, modelName),
		pal.Paint(pal.Directory, format.Path(cwd, c.Config.MaxPathLength)),
	}

	if !ledger.HasUsage() {
		return append(segments, pal.Muted(NoUsageText))
	}

	used := ledger.TotalTokens
	ratio := b.Ratio(used)
	color := pal.ForSeverity(format.SeverityFor(ratio))

	segments = append(segments,
		pal.Muted("[")+
			pal.Paint(color, format.Tokens(used)+"/"+format.Tokens(b.ContextLimit))+" "+
			pal.Paint(color, format.Percent(used, b.ContextLimit))+
			pal.Muted("]"))

	if ratio >= format.InfoThreshold {
		var note string
		if remaining := b.Remaining(used); remaining > 0 {
			note = pal.Muted(format.Tokens(remaining) + " left")
		} else {
			note = pal.Paint(pal.Alert, CompactSoonText)
		}
		segments = append(segments, pal.Muted("(")+note+pal.Muted(")"))
	}

	if ledger.MessageCount > 0 {
		segments = append(segments, pal.Muted(strconv.Itoa(ledger.MessageCount)+" msgs"))
	}

	return segments
}

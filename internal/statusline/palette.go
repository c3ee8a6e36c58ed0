package statusline

import (
	"github.com/muesli/termenv"

	"github.com/giannimassi/ctxline/internal/format"
)

// Palette holds the colors of each segment. Colors are ANSI indexes or
// hex strings understood by termenv.
type Palette struct {
	Profile   termenv.Profile
	Model     string
	Directory string
	Alert     string
	Severity  map[format.Severity]string
}

// DefaultPalette always emits 16-color ANSI escapes. The host renders the
// line, so the profile is fixed rather than detected from stdout.
func DefaultPalette() Palette {
	return Palette{
		Profile:   termenv.ANSI,
		Model:     "5",
		Directory: "6",
		Alert:     "1",
		Severity: map[format.Severity]string{
			format.Normal:   "2",
			format.Info:     "6",
			format.Warning:  "3",
			format.Critical: "1",
		},
	}
}

// PlainPalette renders the same segments without any escape codes.
func PlainPalette() Palette {
	p := DefaultPalette()
	p.Profile = termenv.Ascii
	return p
}

// Paint renders s in the foreground color.
func (p Palette) Paint(color, s string) string {
	return p.Profile.String(s).Foreground(p.Profile.Color(color)).String()
}

// Muted renders s faint.
func (p Palette) Muted(s string) string {
	return p.Profile.String(s).Faint().String()
}

// ForSeverity returns the color for a usage tier.
func (p Palette) ForSeverity(s format.Severity) string {
	return p.Severity[s]
}

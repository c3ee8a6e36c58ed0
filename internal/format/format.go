// Package format turns token counts, ratios and paths into short display text.
package format

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultPathLength is the longest directory shown without abbreviation.
const DefaultPathLength = 30

// Usage ratios at which the severity steps up. A ratio equal to a
// threshold belongs to the higher tier.
const (
	CriticalThreshold = 0.9
	WarningThreshold  = 0.7
	InfoThreshold     = 0.5
)

// Severity classifies how close usage is to the context limit.
type Severity int

const (
	Normal Severity = iota
	Info
	Warning
	Critical
)

func (s Severity) String() string {
	switch s {
	case Critical:
		return "critical"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "normal"
	}
}

// SeverityFor returns the tier for a usage ratio.
func SeverityFor(ratio float64) Severity {
	switch {
	case ratio >= CriticalThreshold:
		return Critical
	case ratio >= WarningThreshold:
		return Warning
	case ratio >= InfoThreshold:
		return Info
	default:
		return Normal
	}
}

// Tokens abbreviates a token count: 999, 1.5K, 2.5M. Values below 1000,
// negative ones included, are printed as is.
func Tokens(n int64) string {
	switch {
	case n >= 1000000:
		return tenths(big.NewInt(n), 1000000) + "M"
	case n >= 1000:
		return tenths(big.NewInt(n), 1000) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Percent renders part/whole as a percentage with one decimal, e.g. "70.0%".
func Percent(part, whole int64) string {
	if whole <= 0 {
		return "0.0%"
	}
	return tenths(new(big.Int).Mul(big.NewInt(part), big.NewInt(100)), whole) + "%"
}

// tenths formats n/div with one decimal, rounding half up. n must be
// non-negative and div positive. The arithmetic is done on big.Int so
// counts near math.MaxInt64 do not wrap.
func tenths(n *big.Int, div int64) string {
	d := big.NewInt(div)
	// floor((20n + div) / 2div) is n*10/div rounded half up.
	t := new(big.Int).Mul(n, big.NewInt(20))
	t.Add(t, d)
	t.Quo(t, new(big.Int).Mul(d, big.NewInt(2)))

	whole, frac := new(big.Int).QuoRem(t, big.NewInt(10), new(big.Int))
	return whole.String() + "." + frac.String()
}

// Path abbreviates a directory longer than maxLength to
// "<second segment>/.../<last two segments>". Paths with three or fewer
// segments are returned unchanged. The result may still exceed maxLength.
func Path(path string, maxLength int) string {
	if utf8.RuneCountInString(path) <= maxLength {
		return path
	}

	parts := strings.Split(path, "/")
	if len(parts) <= 3 {
		return path
	}

	return parts[1] + "/.../" + strings.Join(parts[len(parts)-2:], "/")
}

// Package budget maps models to their context window and compaction point.
package budget

import "math"

const (
	// DefaultContextLimit applies to any model missing from the table.
	DefaultContextLimit int64 = 200000

	// AutoCompactRatio is the share of the context window at which the host
	// compacts the conversation.
	AutoCompactRatio = 0.7
)

// Table maps exact model identifiers to context window sizes.
type Table map[string]int64

// DefaultTable returns the known Claude models.
func DefaultTable() Table {
	return Table{
		"claude-3-5-sonnet-20241022": 200000,
		"claude-3-5-haiku-20241022":  200000,
		"claude-opus-4-1-20250805":   200000,
		"claude-3-5-sonnet-20240620": 200000,
		"claude-3-5-haiku-20240307":  200000,
		"claude-3-opus-20240229":     200000,
		"claude-3-sonnet-20240229":   200000,
		"claude-3-haiku-20240307":    200000,
	}
}

// With returns a copy of t with overrides applied. t is not modified.
func (t Table) With(overrides map[string]int64) Table {
	out := make(Table, len(t)+len(overrides))
	for id, limit := range t {
		out[id] = limit
	}
	for id, limit := range overrides {
		out[id] = limit
	}
	return out
}

// ContextLimit returns the context window for modelID. Unknown ids and
// non-positive entries fall back to DefaultContextLimit.
func (t Table) ContextLimit(modelID string) int64 {
	if limit, ok := t[modelID]; ok && limit > 0 {
		return limit
	}
	return DefaultContextLimit
}

// Budget returns the resolved budget for modelID.
func (t Table) Budget(modelID string) Budget {
	limit := t.ContextLimit(modelID)
	return Budget{
		ContextLimit:  limit,
		AutoCompactAt: AutoCompactAt(limit),
	}
}

// AutoCompactAt is floor(limit * AutoCompactRatio).
func AutoCompactAt(limit int64) int64 {
	return int64(math.Floor(float64(limit) * AutoCompactRatio))
}

// Budget is the token allowance for one model.
type Budget struct {
	ContextLimit  int64
	AutoCompactAt int64
}

// Ratio returns used/ContextLimit. It is not clamped and exceeds 1 once
// usage passes the limit.
func (b Budget) Ratio(used int64) float64 {
	if b.ContextLimit <= 0 {
		return 0
	}
	return float64(used) / float64(b.ContextLimit)
}

// Remaining returns the tokens left before auto-compaction. It is zero or
// negative once the threshold is reached.
func (b Budget) Remaining(used int64) int64 {
	return b.AutoCompactAt - used
}

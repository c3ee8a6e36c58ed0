package model

// Ledger is the token usage accumulated from one transcript.
// MessageCount is the number of records that carried an input token count.
type Ledger struct {
	TotalTokens  int64 `json:"total_tokens"`
	MessageCount int   `json:"message_count"`
}

// HasUsage reports whether any tokens were recorded.
func (l *Ledger) HasUsage() bool {
	return l != nil && l.TotalTokens > 0
}

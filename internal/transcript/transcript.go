// Package transcript reads session transcripts and totals their token usage.
package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/giannimassi/ctxline/pkg/model"
)

// record is one transcript line. Usage may sit under message or at the top
// level depending on who wrote the line.
type record struct {
	Message *messageWrapper `json:"message"`
	Usage   *usageBlock     `json:"usage"`
}

type messageWrapper struct {
	Usage *usageBlock `json:"usage"`
}

type usageBlock struct {
	InputTokens  tokenCount `json:"input_tokens"`
	OutputTokens tokenCount `json:"output_tokens"`
}

// tokenCount accepts any non-negative JSON number. Other values leave it
// unset instead of failing the whole line.
type tokenCount struct {
	value int64
	set   bool
}

func (c *tokenCount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		c.store(n)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil || f < 0 {
		return nil
	}
	if f >= math.MaxInt64 {
		c.store(math.MaxInt64)
	} else {
		c.store(int64(f))
	}
	return nil
}

func (c *tokenCount) store(n int64) {
	if n < 0 {
		return
	}
	c.value = n
	c.set = true
}

// tally returns the tokens a record contributes and whether it counts as a
// message. A record carrying both shapes is still one message.
func (r record) tally() (tokens int64, isMessage bool) {
	blocks := []*usageBlock{r.Usage}
	if r.Message != nil {
		blocks = append(blocks, r.Message.Usage)
	}
	for _, u := range blocks {
		if u == nil {
			continue
		}
		tokens = addTokens(tokens, addTokens(u.InputTokens.value, u.OutputTokens.value))
		if u.InputTokens.set {
			isMessage = true
		}
	}
	return tokens, isMessage
}

// addTokens sums two non-negative counts, saturating at math.MaxInt64.
func addTokens(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// ReadLedger reads the transcript at path and totals its usage.
// A missing file is not an error: it returns nil, nil.
func ReadLedger(path string) (*model.Ledger, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}

	ledger := Scan(data)
	return &ledger, nil
}

// Scan totals usage over newline-delimited JSON records. Blank and
// malformed lines are skipped.
func Scan(data []byte) model.Ledger {
	var ledger model.Ledger

	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var rec record
		if err := model.DecodeTolerant(line, &rec); err != nil {
			continue
		}

		tokens, isMessage := rec.tally()
		ledger.TotalTokens = addTokens(ledger.TotalTokens, tokens)
		if isMessage {
			ledger.MessageCount++
		}
	}

	return ledger
}

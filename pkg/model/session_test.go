package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSession(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantID     string
		wantName   string
		wantDir    string
		transcript string
	}{
		{
			name:       "full document",
			input:      `{"model":{"id":"claude-opus-4-1-20250805","display_name":"Opus"},"cwd":"/home/user/project","transcript_path":"/tmp/t.jsonl"}`,
			wantID:     "claude-opus-4-1-20250805",
			wantName:   "Opus",
			wantDir:    "/home/user/project",
			transcript: "/tmp/t.jsonl",
		},
		{
			name:     "display name falls back to id",
			input:    `{"model":{"id":"unknown-model"},"cwd":"/home/user/project"}`,
			wantID:   "unknown-model",
			wantName: "unknown-model",
			wantDir:  "/home/user/project",
		},
		{
			name:     "workspace dir used when cwd missing",
			input:    `{"workspace":{"current_dir":"/srv/app"}}`,
			wantID:   UnknownModel,
			wantName: UnknownModel,
			wantDir:  "/srv/app",
		},
		{
			name:     "cwd wins over workspace dir",
			input:    `{"cwd":"/a","workspace":{"current_dir":"/b"}}`,
			wantID:   UnknownModel,
			wantName: UnknownModel,
			wantDir:  "/a",
		},
		{
			name:       "wrong field types are ignored",
			input:      `{"model":"opus","cwd":42,"transcript_path":"/tmp/x.jsonl"}`,
			wantID:     UnknownModel,
			wantName:   UnknownModel,
			wantDir:    "",
			transcript: "/tmp/x.jsonl",
		},
		{name: "not json", input: "not json", wantErr: true},
		{name: "null document", input: "null", wantErr: true},
		{name: "null document with whitespace", input: " null\n", wantErr: true},
		{name: "empty input", input: "", wantErr: true},
		{name: "truncated", input: `{"model":{"id":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSession([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, s.ModelID())
			assert.Equal(t, tt.wantName, s.ModelName())
			assert.Equal(t, tt.wantDir, s.WorkingDir())
			assert.Equal(t, tt.transcript, s.TranscriptPath)
		})
	}
}

func TestParseSessionNull(t *testing.T) {
	_, err := ParseSession([]byte("null"))
	assert.ErrorIs(t, err, ErrNullSession)
}

func TestLedgerHasUsage(t *testing.T) {
	var nilLedger *Ledger
	assert.False(t, nilLedger.HasUsage())
	assert.False(t, (&Ledger{}).HasUsage())
	assert.False(t, (&Ledger{MessageCount: 3}).HasUsage())
	assert.True(t, (&Ledger{TotalTokens: 1}).HasUsage())
}

func TestDecodeTolerant(t *testing.T) {
	var v struct {
		A int    `json:"a"`
		B string `json:"b"`
	}
	require.NoError(t, DecodeTolerant([]byte(`{"a":"x","b":"ok"}`), &v))
	assert.Equal(t, 0, v.A)
	assert.Equal(t, "ok", v.B)

	assert.Error(t, DecodeTolerant([]byte(`{"a":`), &v))
}

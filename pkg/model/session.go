package model

import (
	"bytes"
	"errors"
)

// Session is the descriptor the host writes to stdin once per render.
// Every field is optional.
type Session struct {
	Model          ModelInfo     `json:"model"`
	CWD            string        `json:"cwd"`
	Workspace      WorkspaceInfo `json:"workspace"`
	TranscriptPath string        `json:"transcript_path"`
}

type ModelInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type WorkspaceInfo struct {
	CurrentDir string `json:"current_dir"`
}

// UnknownModel is reported when the host sends no model id.
const UnknownModel = "unknown"

// ErrNullSession is returned for a document that is the JSON literal null.
var ErrNullSession = errors.New("session document is null")

// ParseSession decodes the host document. Malformed JSON and a null
// document are errors; fields of the wrong type are left empty.
func ParseSession(data []byte) (Session, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return Session{}, ErrNullSession
	}
	var s Session
	if err := DecodeTolerant(data, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// ModelID returns the model identifier, or UnknownModel.
func (s Session) ModelID() string {
	if s.Model.ID == "" {
		return UnknownModel
	}
	return s.Model.ID
}

// ModelName returns the display name, falling back to the model id.
func (s Session) ModelName() string {
	if s.Model.DisplayName == "" {
		return s.ModelID()
	}
	return s.Model.DisplayName
}

// WorkingDir returns cwd, then workspace.current_dir. It is empty when the
// host sent neither.
func (s Session) WorkingDir() string {
	if s.CWD != "" {
		return s.CWD
	}
	return s.Workspace.CurrentDir
}

// Package replay persists the frame-by-frame input stream a control-panel
// session drives the engine with, so a tool-assisted-speedrun recording
// can be closed and replayed deterministically later.
package replay

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/isgasho/gsl8engine/gml"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	project_name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS frames (
	session_id TEXT NOT NULL,
	frame_index INTEGER NOT NULL,
	keys_held TEXT NOT NULL,
	mouse_buttons TEXT NOT NULL,
	spoof_millis INTEGER NOT NULL,
	PRIMARY KEY (session_id, frame_index)
);
`

// Frame is one recorded frame of input: every key held, every mouse
// button held, and the spoofed clock value the control panel asserted for
// that frame.
type Frame struct {
	Index        int64
	KeysHeld     []int32
	MouseButtons []int32
	SpoofMillis  int64
}

// Store is a session/recording store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewSession starts a recording session, returning its id.
func (s *Store) NewSession(projectName string) (string, error) {
	id := uuid.New().String()
	if _, err := s.db.Exec(`INSERT INTO sessions (id, project_name) VALUES (?, ?)`, id, projectName); err != nil {
		return "", fmt.Errorf("replay: create session: %w", err)
	}
	return id, nil
}

// AppendFrame records one frame of a session's input stream.
func (s *Store) AppendFrame(sessionID string, f Frame) error {
	keys, err := json.Marshal(f.KeysHeld)
	if err != nil {
		return err
	}
	buttons, err := json.Marshal(f.MouseButtons)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO frames (session_id, frame_index, keys_held, mouse_buttons, spoof_millis) VALUES (?, ?, ?, ?, ?)`,
		sessionID, f.Index, string(keys), string(buttons), f.SpoofMillis,
	)
	if err != nil {
		return gml.ReplayError(fmt.Sprintf("append frame %d: %v", f.Index, err))
	}
	return nil
}

// Frames replays a session's recorded frames in order, failing with a
// gml.Error{Kind: KindReplayError} if the stored stream is corrupt or out
// of order.
func (s *Store) Frames(sessionID string) ([]Frame, error) {
	rows, err := s.db.Query(
		`SELECT frame_index, keys_held, mouse_buttons, spoof_millis FROM frames WHERE session_id = ? ORDER BY frame_index`,
		sessionID,
	)
	if err != nil {
		return nil, gml.ReplayError(err.Error())
	}
	defer rows.Close()

	var out []Frame
	lastIndex := int64(-1)
	for rows.Next() {
		var f Frame
		var keysJSON, buttonsJSON string
		if err := rows.Scan(&f.Index, &keysJSON, &buttonsJSON, &f.SpoofMillis); err != nil {
			return nil, gml.ReplayError(err.Error())
		}
		if f.Index <= lastIndex {
			return nil, gml.ReplayError(fmt.Sprintf("out-of-order frame %d after %d", f.Index, lastIndex))
		}
		lastIndex = f.Index
		if err := json.Unmarshal([]byte(keysJSON), &f.KeysHeld); err != nil {
			return nil, gml.ReplayError(fmt.Sprintf("corrupt keys_held at frame %d: %v", f.Index, err))
		}
		if err := json.Unmarshal([]byte(buttonsJSON), &f.MouseButtons); err != nil {
			return nil, gml.ReplayError(fmt.Sprintf("corrupt mouse_buttons at frame %d: %v", f.Index, err))
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

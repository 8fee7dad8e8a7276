// Package controlpanel implements the loopback TCP transport a
// tool-assisted-speedrun front-end uses to drive the engine frame-by-frame
//: length-prefixed framed messages beginning
// with a Hello handshake, grounded on
// original_source/control-panel/main.rs and its panel/Message protocol.
//
// There is no wire-format library in the retrieved dependency graph that
// fits a small framed-message protocol like this one, so the frame
// payloads use the standard library's encoding/gob rather than a
// third-party codec (see DESIGN.md).
package controlpanel

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"io"
)

// Kind tags which message a frame carries.
type Kind byte

const (
	KindHello Kind = iota
	KindKeyState
	KindMouseState
	KindSpoofTime
	KindStep
)

// Hello is the handshake the control panel sends immediately after
// connecting: which keys and mouse buttons it wants state
// updates for, and the save filename it expects the engine to use.
type Hello struct {
	KeysRequested          []int32
	MouseButtonsRequested  []int32
	Filename               string
}

// KeyState reports one key's held/released transition for the frame.
type KeyState struct {
	Key  int32
	Down bool
}

// MouseState reports a mouse button transition and current position.
type MouseState struct {
	Button int32
	Down   bool
	X, Y   int32
}

// SpoofTime overrides the engine's `current_time`/date getters for the
// next frame.
type SpoofTime struct {
	Millis int64
}

// Step requests the engine advance exactly one frame.
type Step struct{}

// WriteFrame gob-encodes payload and writes it as one length-prefixed
// frame: a 4-byte big-endian length, a 1-byte Kind, then the gob stream.
func WriteFrame(w io.Writer, kind Kind, payload interface{}) error {
	var body bytes.Buffer
	body.WriteByte(byte(kind))
	if err := gob.NewEncoder(&body).Encode(payload); err != nil {
		return err
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(body.Len()))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(body.Bytes())
	return err
}

// ReadFrame blocks until one full frame arrives, returning its Kind and
// the still-gob-encoded payload bytes.
func ReadFrame(r io.Reader) (Kind, []byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return 0, nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, nil, err
	}
	if len(buf) == 0 {
		return 0, nil, errors.New("controlpanel: empty frame")
	}
	return Kind(buf[0]), buf[1:], nil
}

// DecodeHello decodes a KindHello frame's payload.
func DecodeHello(payload []byte) (Hello, error) {
	var h Hello
	err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&h)
	return h, err
}

// DecodeKeyState decodes a KindKeyState frame's payload.
func DecodeKeyState(payload []byte) (KeyState, error) {
	var k KeyState
	err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&k)
	return k, err
}

// DecodeMouseState decodes a KindMouseState frame's payload.
func DecodeMouseState(payload []byte) (MouseState, error) {
	var m MouseState
	err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&m)
	return m, err
}

// DecodeSpoofTime decodes a KindSpoofTime frame's payload.
func DecodeSpoofTime(payload []byte) (SpoofTime, error) {
	var s SpoofTime
	err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&s)
	return s, err
}

package server

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionClosed reports a frame sent to or queued on a session that
	// has been torn down.
	ErrSessionClosed = errors.New("navigation session closed")

	// ErrFrameQueueFull reports a navigate frame dropped because the event
	// loop is behind.
	ErrFrameQueueFull = errors.New("navigation frame queue full")

	// ErrSessionLimit is returned to upgrades beyond ServerConfig.MaxSessions.
	ErrSessionLimit = errors.New("live navigation session limit reached")

	// ErrNotConnected reports a session without a WebSocket.
	ErrNotConnected = errors.New("navigation session has no connection")
)

// FrameError is a failure to deliver a server frame.
type FrameError struct {
	Session string
	Stage   string // render, encode or write
	Frame   string // frame type, empty for render
	Err     error
}

func (e *FrameError) Error() string {
	if e.Frame == "" {
		return fmt.Sprintf("session %s: %s: %v", e.Session, e.Stage, e.Err)
	}
	return fmt.Sprintf("session %s: %s %s frame: %v", e.Session, e.Stage, e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

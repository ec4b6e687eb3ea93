package server

import (
	"encoding/json"
	"runtime/debug"
	"time"

	"github.com/gorilla/websocket"

	"github.com/logsviewer/logsviewer/internal/errors"
)

// ReadLoop continuously reads frames from the WebSocket connection and
// queues them for the event loop. It blocks until the connection is closed
// or an error occurs.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxFrameSize)
	s.conn.SetReadDeadline(time.Now().Add(s.config.SessionReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.SessionReadTimeout))
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.config.SessionReadTimeout))

		var f ClientFrame
		if err := json.Unmarshal(msg, &f); err != nil || f.Type == "" {
			s.logger.Warn("frame decode error", "error", err)
			s.sendError(errors.New("E401"))
			continue
		}

		if err := s.QueueFrame(f); err == ErrFrameQueueFull {
			s.sendError(errors.New("E401").WithDetail("event queue full"))
		}
	}
}

// WriteLoop sends heartbeats until the session is closed.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.sendPing(); err != nil {
				s.Close()
				return
			}

		case <-s.done:
			return
		}
	}
}

func (s *Session) sendPing() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.config.WriteTimeout))
}

// EventLoop processes queued frames and dispatched callbacks one at a time.
// Navigations and focus callbacks therefore never interleave.
func (s *Session) EventLoop() {
	for {
		select {
		case f := <-s.events:
			s.safeExecute(func() { s.handleFrame(f) })

		case fn := <-s.dispatchCh:
			s.safeExecute(fn)

		case <-s.done:
			return
		}
	}
}

// safeExecute runs fn with panic recovery.
func (s *Session) safeExecute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("event loop panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

// Start starts all session loops.
func (s *Session) Start() {
	go s.ReadLoop()
	go s.WriteLoop()
	go s.EventLoop()
}
